package get_resource_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidParams     = "некорректные параметры запроса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/bookings?startDate=...&endDate=...&status=...&includeInactive=...
// Доступно только менеджерам ресурса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем resourceId из URL
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /resources/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим query параметры фильтрации
	req, err := parseQueryParams(r.URL.Query(), userID, resourceID)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid query params: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	bookingList, err := h.service.GetResourceBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/bookings - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /resources/{id}/bookings - Access denied: resource_id=%d, user_id=%d", resourceID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/bookings - Invalid filter: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /resources/{id}/bookings - Failed to get bookings: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/bookings - Bookings retrieved successfully: resource_id=%d, user_id=%d, count=%d",
		resourceID, userID, len(bookingList.Bookings))
	handlers.RespondJSON(w, http.StatusOK, bookingList)
}
