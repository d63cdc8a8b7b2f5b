package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
	GetByOwnerAndDate(ctx context.Context, ownerID int64, date time.Time) ([]*domain.Booking, error)
}

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetPolicyWithHierarchy(ctx context.Context, resourceID int64, resourceType string) (*domain.ResourceBookingPolicy, error)
}

// ResourceServiceClient интерфейс клиента для ResourceService
type ResourceServiceClient interface {
	GetResource(ctx context.Context, resourceID int64) (*resourceservice.Resource, error)
	GetMaintenanceStatus(ctx context.Context, resourceID int64, date time.Time) (*resourceservice.MaintenanceStatus, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
