package get_resource_bookings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetResourceBookings(ctx context.Context, req *models.GetResourceBookingsRequest) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
