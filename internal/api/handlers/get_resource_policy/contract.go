package get_resource_policy

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/policy/models"
)

// PolicyService интерфейс сервиса политик бронирования
type PolicyService interface {
	GetEffectivePolicy(ctx context.Context, req *models.GetPolicyRequest) (*models.PolicyResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
