package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	policyRepo     PolicyRepository
	resourceClient ResourceServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyRepo PolicyRepository,
	resourceClient ResourceServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		policyRepo:     policyRepo,
		resourceClient: resourceClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, resource=%d, start=%s, end=%s",
		req.UserID, req.ResourceID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Строим интервал и классифицируем его по сетке слотов.
	// Бронировать можно только утро, день или целый день
	interval, err := domain.NewTimeInterval(req.Start, req.End)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	kind := domain.Classify(interval)
	if !kind.IsFixed() {
		uc.logger.Warn("CreateBooking: interval %s does not match the slot grid", interval)
		return nil, ErrInvalidTimeSlot
	}

	// 4. Получаем ресурс
	resource, err := uc.resourceClient.GetResource(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceservice.ErrResourceNotFound) {
			uc.logger.Warn("CreateBooking: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	if !resource.IsActive {
		uc.logger.Warn("CreateBooking: resource id=%d is not active", req.ResourceID)
		return nil, ErrResourceInactive
	}

	// 5. Проверяем статус обслуживания на дату бронирования
	maintenance, err := uc.resourceClient.GetMaintenanceStatus(ctx, req.ResourceID, interval.Date())
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get maintenance status for resource id=%d: %v",
			req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get maintenance status: %v", ErrInternal, err)
	}
	if maintenance.IsUnderMaintenance {
		uc.logger.Warn("CreateBooking: resource id=%d is under maintenance on %s",
			req.ResourceID, interval.Date().Format(domain.DateFormat))
		return nil, ErrResourceUnderMaintenance
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем политику бронирования с учетом иерархии
		policy, err := uc.policyRepo.GetPolicyWithHierarchy(txCtx, req.ResourceID, string(resource.Type))
		if err != nil && !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Error("CreateBooking: failed to get policy: %v", err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		// Если политика не настроена, используем дефолтные значения
		if policy == nil {
			policy = domain.DefaultPolicy()
			uc.logger.Info("CreateBooking: using default policy for resource=%d", req.ResourceID)
		} else {
			uc.logger.Info("CreateBooking: using policy id=%d", policy.ID)
		}

		// 6.2. Проверяем горизонт бронирования
		if err := validateAdvanceBooking(interval, now, policy.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: advance booking validation failed: %v", err)
			return err
		}

		// 6.3. Проверяем минимальный запас времени до начала слота
		if err := validateNotice(interval, now, policy.MinNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
			return err
		}

		// 6.4. Получаем активные бронирования ресурса на дату с блокировкой (FOR UPDATE)
		date := interval.Date()
		filter := domain.ResourceBookingsFilter{
			ResourceID:      req.ResourceID,
			StartDate:       &date,
			EndDate:         &date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByResourceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.5. Проверяем, что слот свободен
		if conflicting := domain.FindOverlap(interval, bookings, 0); conflicting != nil {
			uc.logger.Warn("CreateBooking: slot overlaps active booking id=%d", conflicting.ID)
			return ErrSlotNotAvailable
		}

		// 6.6. Проверяем, что у владельца нет пересечений на других ресурсах
		ownerBookings, err := uc.bookingRepo.GetByOwnerAndDate(txCtx, req.UserID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get owner bookings: %v", err)
			return fmt.Errorf("%w: failed to get owner bookings: %v", ErrInternal, err)
		}

		if domain.OwnerHasOverlap(interval, req.ResourceID, ownerBookings, 0) {
			uc.logger.Warn("CreateBooking: user=%d already has a booking overlapping %s", req.UserID, interval)
			return ErrOwnerConflict
		}

		// 6.7. Создаем бронирование
		booking := &domain.Booking{
			ResourceID: req.ResourceID,
			OwnerID:    req.UserID,
			Interval:   interval,
			Title:      req.Title,
			Status:     domain.StatusActive,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:         result.ID,
		ResourceID: result.ResourceID,
		OwnerID:    result.OwnerID,
		Start:      result.Interval.Start,
		End:        result.Interval.End,
		SlotKind:   kind,
		Title:      result.Title,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
