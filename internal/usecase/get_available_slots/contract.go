package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByResourceWithFilter получает бронирования ресурса за период
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
}

// ResourceServiceClient интерфейс клиента для ResourceService
type ResourceServiceClient interface {
	GetResource(ctx context.Context, resourceID int64) (*resourceservice.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
