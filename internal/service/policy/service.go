package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/policy/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// Service сервис для работы с политиками бронирования
type Service struct {
	policyRepo     PolicyRepository
	resourceClient ResourceServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(
	policyRepo PolicyRepository,
	resourceClient ResourceServiceClient,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:     policyRepo,
		resourceClient: resourceClient,
		logger:         logger,
	}
}

// GetEffectivePolicy получает действующую политику ресурса с учетом иерархии
// Приоритет: resource > type > global > default
// Публичный метод - доступен всем
func (s *Service) GetEffectivePolicy(ctx context.Context, req *models.GetPolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("GetEffectivePolicy: fetching policy for resource=%d", req.ResourceID)

	// Получаем ресурс для определения его типа
	resource, err := s.resourceClient.GetResource(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceservice.ErrResourceNotFound) {
			s.logger.Warn("GetEffectivePolicy: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetEffectivePolicy: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	policy, err := s.policyRepo.GetPolicyWithHierarchy(ctx, req.ResourceID, string(resource.Type))
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			// Ни один уровень не настроен - действует дефолтная политика
			s.logger.Info("GetEffectivePolicy: no policy configured for resource=%d, using defaults", req.ResourceID)
			return models.FromDomainPolicy(domain.DefaultPolicy()), nil
		}
		s.logger.Error("GetEffectivePolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetEffectivePolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEffectivePolicy: successfully fetched policy id=%d (level: %s)",
		policy.ID, models.PolicyLevel(policy))
	return models.FromDomainPolicy(policy), nil
}

// UpdatePolicy обновляет политику конкретного ресурса
// Доступно только менеджерам ресурса
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) UpdatePolicy(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("UpdatePolicy: updating policy for resource=%d by user=%d", req.ResourceID, req.UserID)

	// 1. Получаем ресурс для проверки прав доступа
	resource, err := s.resourceClient.GetResource(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceservice.ErrResourceNotFound) {
			s.logger.Warn("UpdatePolicy: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("UpdatePolicy: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер ресурса)
	if !s.isManager(resource, req.UserID) {
		s.logger.Warn("UpdatePolicy: user=%d is not a manager of resource=%d", req.UserID, req.ResourceID)
		return nil, ErrAccessDenied
	}

	// 3. Берём текущую политику ресурса как основу для частичного обновления
	current, err := s.policyRepo.GetByResourceID(ctx, req.ResourceID)
	if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
		s.logger.Error("UpdatePolicy: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: UpdatePolicy - repository error: %v", ErrInternal, err)
	}
	if current == nil {
		current = domain.DefaultPolicy()
		current.ResourceID = ptr.Ptr(req.ResourceID)
	}

	// 4. Применяем обновления и валидируем результат
	req.ApplyToPolicy(current)

	if err := s.validatePolicyData(current.AdvanceBookingDays, current.MinNoticeMinutes); err != nil {
		s.logger.Warn("UpdatePolicy: validation failed for resource=%d: %v", req.ResourceID, err)
		return nil, err
	}

	// 5. Сохраняем политику
	updated, err := s.policyRepo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("UpdatePolicy: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: UpdatePolicy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePolicy: successfully updated policy id=%d for resource=%d", updated.ID, req.ResourceID)
	return models.FromDomainPolicy(updated), nil
}

// Вспомогательные методы

// isManager проверяет, что пользователь является менеджером ресурса
func (s *Service) isManager(resource *resourceservice.Resource, userID int64) bool {
	for _, managerID := range resource.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}

// validatePolicyData валидирует параметры политики
func (s *Service) validatePolicyData(advanceDays, minNotice int) error {
	if advanceDays < domain.MinAdvanceBookingDays || advanceDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if minNotice < domain.MinNoticeMinutesLower || minNotice > domain.MinNoticeMinutesUpper {
		return fmt.Errorf("%w: minNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinNoticeMinutesLower, domain.MinNoticeMinutesUpper)
	}

	return nil
}
