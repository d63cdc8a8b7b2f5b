package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	return nil
}

// validateAdvanceBooking проверяет, что дата не превышает горизонт
// бронирования политики. advanceBookingDays = 0 означает "без ограничений"
func validateAdvanceBooking(interval domain.TimeInterval, now time.Time, advanceBookingDays int) error {
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, advanceBookingDays)

	if interval.Date().After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateNotice проверяет, что до начала слота остаётся не меньше
// minNoticeMinutes
func validateNotice(interval domain.TimeInterval, now time.Time, minNoticeMinutes int) error {
	minStart := now.Add(time.Duration(minNoticeMinutes) * time.Minute)

	if interval.Start.Before(minStart) {
		if minNoticeMinutes == 0 {
			return ErrInvalidDate
		}
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}
