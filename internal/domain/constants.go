package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Fixed slot grid boundaries (wall-clock, UTC).
// The 12:00-13:00 gap between Morning and Afternoon is unbookable buffer time.
const (
	MorningStartTime   types.TimeString = "08:00"
	MorningEndTime     types.TimeString = "12:00"
	AfternoonStartTime types.TimeString = "13:00"
	AfternoonEndTime   types.TimeString = "17:00"
)

// HalfDayMinutes is the length of a half-day slot. Custom intervals up to
// this duration are matched against half-day slots on a move, longer ones
// against Full-Day.
const HalfDayMinutes = 240

// Default booking policy values
const (
	DefaultAdvanceBookingDays = 0 // 0 = unlimited
	DefaultMinNoticeMinutes   = 0
)

// Business validation constants
const (
	MinAdvanceBookingDays = 0
	MaxAdvanceBookingDays = 365 // 1 year
	MinNoticeMinutesLower = 0
	MinNoticeMinutesUpper = 10080 // 1 week
	MaxTitleLength        = 200
	MaxCancelReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByOwner,
	StatusCancelledByManager,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusActive,
}
