package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

// UseCase use case для получения свободных слотов ресурса
type UseCase struct {
	bookingRepo    BookingRepository
	resourceClient ResourceServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceClient ResourceServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		resourceClient: resourceClient,
		logger:         logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Снапшот бронирований читается один раз; результат считается по нему
// без повторных обращений к хранилищу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, resource=%d, from=%s, to=%s",
		req.UserID, req.ResourceID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование ресурса
	if _, err := uc.resourceClient.GetResource(ctx, req.ResourceID); err != nil {
		if errors.Is(err, resourceservice.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailableSlots: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования ресурса за период
	// EndDate в фильтре включительный, диапазон запроса - исключительный
	endInclusive := dateOnly(req.To).AddDate(0, 0, -1)
	from := dateOnly(req.From)
	filter := domain.ResourceBookingsFilter{
		ResourceID:      req.ResourceID,
		StartDate:       &from,
		EndDate:         &endInclusive,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычисляем свободные слоты
	slots := computeFreeSlots(bookings, req.From, req.To)

	uc.logger.Info("GetAvailableSlots: %d free slots for resource=%d, from=%s, to=%s",
		len(slots), req.ResourceID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	return &Response{
		ResourceID: req.ResourceID,
		From:       req.From,
		To:         req.To,
		Slots:      slots,
	}, nil
}
