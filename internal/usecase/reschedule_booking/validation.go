package reschedule_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.TargetResourceID < 0 {
		return fmt.Errorf("%w: targetResourceID must not be negative", ErrInvalidInput)
	}

	if req.ProposedStart.IsZero() || req.ProposedEnd.IsZero() {
		return fmt.Errorf("%w: proposedStart and proposedEnd are required", ErrInvalidInput)
	}

	switch req.Gesture {
	case GestureMove, GestureResize:
	default:
		return fmt.Errorf("%w: gesture must be %q or %q", ErrInvalidInput, GestureMove, GestureResize)
	}

	return nil
}

// validateResizeScope проверяет, что resize остаётся в рамках того же
// ресурса и той же даты. Смена ресурса или дня - это move, не resize
func validateResizeScope(req *Request, booking *domain.Booking, proposed domain.TimeInterval) error {
	if req.TargetResourceID != 0 && req.TargetResourceID != booking.ResourceID {
		return fmt.Errorf("%w: resize cannot change the resource", ErrInvalidInput)
	}

	if !proposed.SameDate(booking.Interval) {
		return fmt.Errorf("%w: resize cannot change the date", ErrInvalidInput)
	}

	return nil
}
