package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
)

// UseCase use case переноса бронирования (move / resize)
type UseCase struct {
	bookingRepo    BookingRepository
	resourceClient ResourceServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceClient ResourceServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		resourceClient: resourceClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case переноса бронирования
//
// Работает в два режима. DryRun отвечает консультативным решением по
// снапшоту без блокировок. Реальный перенос заново принимает решение
// внутри сериализуемой транзакции по снапшоту с FOR UPDATE и фиксирует
// его атомарно - решение dry-run к этому моменту могло устареть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: user=%d, booking=%d, gesture=%s, dryRun=%v",
		req.UserID, req.BookingID, req.Gesture, req.DryRun)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 4. Переносить бронирование может только его владелец
	if booking.OwnerID != req.UserID {
		uc.logger.Warn("RescheduleBooking: user=%d is not the owner of booking=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 5. Отменённое бронирование не переносится
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d has status %s", booking.ID, booking.Status)
		return nil, ErrCannotReschedule
	}

	// 6. Строим предложенный интервал
	proposed, err := domain.NewTimeInterval(req.ProposedStart, req.ProposedEnd)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: invalid proposed interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 7. Определяем целевой ресурс
	targetResourceID := req.TargetResourceID
	if targetResourceID == 0 {
		targetResourceID = booking.ResourceID
	}

	if req.Gesture == GestureResize {
		if err := validateResizeScope(req, booking, proposed); err != nil {
			uc.logger.Warn("RescheduleBooking: %v", err)
			return nil, err
		}
	}

	// 8. Проверяем существование целевого ресурса
	if _, err := uc.resourceClient.GetResource(ctx, targetResourceID); err != nil {
		if errors.Is(err, resourceservice.ErrResourceNotFound) {
			uc.logger.Warn("RescheduleBooking: resource id=%d not found", targetResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get resource id=%d: %v", targetResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 9. Проверяем статус обслуживания на предложенную дату.
	// Внешний вызов выполняется до транзакции
	maintenance, err := uc.resourceClient.GetMaintenanceStatus(ctx, targetResourceID, proposed.Date())
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get maintenance status for resource id=%d: %v",
			targetResourceID, err)
		return nil, fmt.Errorf("%w: failed to get maintenance status: %v", ErrInternal, err)
	}

	input := resolveInput{
		booking:          booking,
		gesture:          req.Gesture,
		proposed:         proposed,
		targetResourceID: targetResourceID,
		now:              now,
		underMaintenance: maintenance.IsUnderMaintenance,
	}

	// 10. Dry-run: решение по снапшоту без блокировок и записи
	if req.DryRun {
		if err := uc.loadSnapshots(ctx, &input); err != nil {
			return nil, err
		}

		decision := resolve(input)
		uc.logger.Info("RescheduleBooking: dry-run decision for booking=%d: %s", booking.ID, decision.Outcome)

		return &Response{Decision: decision, Persisted: false}, nil
	}

	// 11. Реальный перенос: решение и запись в сериализуемой транзакции
	var decision domain.RescheduleDecision

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 11.1. Снапшоты читаются внутри транзакции с блокировкой FOR UPDATE
		if err := uc.loadSnapshots(txCtx, &input); err != nil {
			return err
		}

		// 11.2. Принимаем решение по авторитетному снапшоту
		decision = resolve(input)
		if !decision.IsAccepted() {
			return nil
		}

		// 11.3. Фиксируем принятый интервал
		if err := uc.bookingRepo.UpdateSchedule(txCtx, booking.ID, decision.ResourceID, decision.Interval); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if decision.IsAccepted() {
		uc.logger.Info("RescheduleBooking: booking=%d rescheduled to resource=%d, interval=%s, outcome=%s",
			booking.ID, decision.ResourceID, decision.Interval, decision.Outcome)
		return &Response{Decision: decision, Persisted: true}, nil
	}

	uc.logger.Info("RescheduleBooking: booking=%d rejected: %s (%s)",
		booking.ID, decision.RejectCode, decision.Reason)
	return &Response{Decision: decision, Persisted: false}, nil
}

// loadSnapshots заполняет в input снапшоты бронирований целевого ресурса
// и владельца на предложенную дату
func (uc *UseCase) loadSnapshots(ctx context.Context, input *resolveInput) error {
	date := input.proposed.Date()

	filter := domain.ResourceBookingsFilter{
		ResourceID:      input.targetResourceID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	}

	resourceBookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get resource bookings: %v", err)
		return fmt.Errorf("%w: failed to get resource bookings: %v", ErrInternal, err)
	}

	ownerBookings, err := uc.bookingRepo.GetByOwnerAndDate(ctx, input.booking.OwnerID, date)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get owner bookings: %v", err)
		return fmt.Errorf("%w: failed to get owner bookings: %v", ErrInternal, err)
	}

	input.resourceBookings = resourceBookings
	input.ownerBookings = ownerBookings
	return nil
}
