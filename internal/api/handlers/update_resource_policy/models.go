package update_resource_policy

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/policy/models"
)

// UpdatePolicyRequest запрос на обновление политики бронирования ресурса
// Все поля опциональны - обновляются только переданные значения
type UpdatePolicyRequest struct {
	AdvanceBookingDays *int `json:"advanceBookingDays,omitempty"`
	MinNoticeMinutes   *int `json:"minNoticeMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в сервисную модель
func (r *UpdatePolicyRequest) ToServiceRequest(userID, resourceID int64) *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		UserID:             userID,
		ResourceID:         resourceID,
		AdvanceBookingDays: r.AdvanceBookingDays,
		MinNoticeMinutes:   r.MinNoticeMinutes,
	}
}
