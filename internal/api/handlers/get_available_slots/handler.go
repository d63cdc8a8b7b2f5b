package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingRange      = "параметры from и to обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "некорректный диапазон дат"
	msgRangeTooWide      = "слишком широкий диапазон дат"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/available-slots
// Query params: from (required, YYYY-MM-DD, включительно), to (required, YYYY-MM-DD, исключительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем resourceId из URL
	resourceIDStr := vars["resourceId"]
	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Извлекаем диапазон дат из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /resources/{id}/available-slots - Missing date range: resource_id=%d", resourceID)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(resourceID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/available-slots - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailableSlots.ErrRangeTooWide):
			h.logger.Warn("GET /resources/{id}/available-slots - Range too wide: resource_id=%d", resourceID)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, getAvailableSlots.ErrInvalidRange), errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/available-slots - Invalid range: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /resources/{id}/available-slots - Failed to get slots: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /resources/{id}/available-slots - Slots retrieved successfully: resource_id=%d, slots_count=%d",
		resourceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
