package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgResourceNotFound   = "ресурс не найден"
	msgResourceInactive   = "ресурс недоступен для бронирования"
	msgUnderMaintenance   = "ресурс на обслуживании в выбранную дату"
	msgInvalidTimeSlot    = "интервал не соответствует сетке слотов (утро, день или целый день)"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgSlotNotAvailable   = "выбранный слот уже занят"
	msgOwnerConflict      = "у вас уже есть бронирование на это время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrOwnerConflict):
			h.logger.Warn("POST /bookings - Owner conflict: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondError(w, http.StatusConflict, msgOwnerConflict)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: resource_id=%d", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrResourceInactive):
			h.logger.Warn("POST /bookings - Resource inactive: resource_id=%d", req.ResourceID)
			handlers.RespondBadRequest(w, msgResourceInactive)

		case errors.Is(err, createBooking.ErrResourceUnderMaintenance):
			h.logger.Warn("POST /bookings - Resource under maintenance: resource_id=%d", req.ResourceID)
			handlers.RespondError(w, http.StatusConflict, msgUnderMaintenance)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%d, resource_id=%d", userID, req.ResourceID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, resource_id=%d, error=%v", userID, req.ResourceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, resource_id=%d, error=%v",
				userID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, resource_id=%d",
		result.ID, userID, req.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
