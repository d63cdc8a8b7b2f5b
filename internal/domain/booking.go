package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive             BookingStatus = "active"
	StatusCancelledByOwner   BookingStatus = "cancelled_by_owner"
	StatusCancelledByManager BookingStatus = "cancelled_by_manager"
)

// Booking represents a reservation of a single resource by a single user.
// The engine only classifies and validates booking intervals; creation and
// persistence happen in the usecase and storage layers.
type Booking struct {
	ID         int64
	ResourceID int64
	OwnerID    int64
	Interval   TimeInterval
	Title      string
	Status     BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByOwner || b.Status == StatusCancelledByManager
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CanBeRescheduled returns true if the booking can be moved or resized
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusActive
}

// SlotKind classifies the booking's interval against the fixed grid
func (b *Booking) SlotKind() SlotKind {
	return Classify(b.Interval)
}

// ResourceBookingsFilter фильтр для получения бронирований ресурса
type ResourceBookingsFilter struct {
	ResourceID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода включительно (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
