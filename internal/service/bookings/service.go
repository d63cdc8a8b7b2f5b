package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	resourceClient ResourceServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	resourceClient ResourceServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		resourceClient: resourceClient,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является менеджером ресурса
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByOwnerID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetResourceBookings получает бронирования ресурса с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только менеджерам ресурса
//
// Примеры использования:
// - Все активные бронирования: GetResourceBookings(ctx, &GetResourceBookingsRequest{ResourceID: 123, UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetResourceBookings(ctx context.Context, req *models.GetResourceBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetResourceBookings: fetching bookings for resource=%d, user=%d", req.ResourceID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.ResourceID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetResourceBookings: invalid filter for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetResourceBookings: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: GetResourceBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetResourceBookings: successfully fetched %d bookings for resource=%d", len(bookings), req.ResourceID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Владелец может отменить только своё бронирование (cancelled_by_owner)
// Менеджер может отменить любое бронирование ресурса (cancelled_by_manager)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	// Проверяем, является ли пользователь владельцем бронирования
	if booking.OwnerID == req.UserID {
		cancelStatus = domain.StatusCancelledByOwner
	} else {
		// Проверяем, является ли пользователь менеджером ресурса
		if err := s.checkManagerAccess(ctx, booking.ResourceID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByManager
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он менеджер ресурса
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if booking.OwnerID == userID {
		return nil
	}

	// Проверяем, является ли пользователь менеджером ресурса
	if err := s.checkManagerAccess(ctx, booking.ResourceID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером ресурса
func (s *Service) checkManagerAccess(ctx context.Context, resourceID int64, userID int64) error {
	// Получаем ресурс через ResourceService
	resource, err := s.resourceClient.GetResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, resourceservice.ErrResourceNotFound) {
			s.logger.Warn("checkManagerAccess: resource id=%d not found", resourceID)
			return ErrResourceNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get resource id=%d: %v", resourceID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get resource: %v", ErrInternal, err)
	}

	// Проверяем, что userID в списке менеджеров
	for _, managerID := range resource.ManagerIDs {
		if managerID == userID {
			s.logger.Info("checkManagerAccess: user=%d is manager of resource=%d", userID, resourceID)
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of resource=%d", userID, resourceID)
	return ErrAccessDenied
}
