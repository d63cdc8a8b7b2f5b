package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error)
	GetByOwnerAndDate(ctx context.Context, ownerID int64, date time.Time) ([]*domain.Booking, error)
	UpdateSchedule(ctx context.Context, id int64, resourceID int64, interval domain.TimeInterval) error
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
