package policy

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

// PolicyRepository интерфейс репозитория политик бронирования
type PolicyRepository interface {
	GetPolicyWithHierarchy(ctx context.Context, resourceID int64, resourceType string) (*domain.ResourceBookingPolicy, error)
	GetByResourceID(ctx context.Context, resourceID int64) (*domain.ResourceBookingPolicy, error)
	Upsert(ctx context.Context, policy *domain.ResourceBookingPolicy) (*domain.ResourceBookingPolicy, error)
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
