package get_resource_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/policy"
	"github.com/m04kA/SMC-ReservationService/internal/service/policy/models"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/policy
// Публичный эндпоинт - возвращает действующую политику бронирования ресурса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем resourceId из URL
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/policy - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	policyResp, err := h.service.GetEffectivePolicy(r.Context(), &models.GetPolicyRequest{ResourceID: resourceID})
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/policy - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /resources/{id}/policy - Failed to get policy: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/policy - Policy retrieved successfully: resource_id=%d, level=%s",
		resourceID, policyResp.Level)
	handlers.RespondJSON(w, http.StatusOK, policyResp)
}
