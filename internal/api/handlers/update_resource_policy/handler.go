package update_resource_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/policy"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidPolicy     = "некорректные параметры политики"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
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

// Handle PUT /api/v1/resources/{resourceId}/policy
// Доступно только менеджерам ресурса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем resourceId из URL
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /resources/{id}/policy - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /resources/{id}/policy - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим тело запроса
	var req UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /resources/{id}/policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	policyResp, err := h.service.UpdatePolicy(r.Context(), req.ToServiceRequest(userID, resourceID))
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrResourceNotFound):
			h.logger.Warn("PUT /resources/{id}/policy - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("PUT /resources/{id}/policy - Access denied: resource_id=%d, user_id=%d", resourceID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("PUT /resources/{id}/policy - Invalid policy data: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidPolicy)

		default:
			h.logger.Error("PUT /resources/{id}/policy - Failed to update policy: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /resources/{id}/policy - Policy updated successfully: resource_id=%d, user_id=%d",
		resourceID, userID)
	handlers.RespondJSON(w, http.StatusOK, policyResp)
}
