package bookings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
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
