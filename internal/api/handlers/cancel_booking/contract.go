package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
