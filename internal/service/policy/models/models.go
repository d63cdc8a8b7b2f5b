package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// Request модели

// GetPolicyRequest запрос на получение действующей политики ресурса
type GetPolicyRequest struct {
	ResourceID int64 `json:"resourceId"`
}

// UpdatePolicyRequest запрос на обновление политики ресурса
// Все поля опциональны - обновляются только переданные значения
type UpdatePolicyRequest struct {
	UserID             int64 `json:"userId"`
	ResourceID         int64 `json:"resourceId"`
	AdvanceBookingDays *int  `json:"advanceBookingDays,omitempty"`
	MinNoticeMinutes   *int  `json:"minNoticeMinutes,omitempty"`
}

// Response модели

// PolicyResponse ответ с данными политики бронирования
type PolicyResponse struct {
	ID                 int64   `json:"id,omitempty"`
	ResourceID         *int64  `json:"resourceId,omitempty"`
	ResourceType       *string `json:"resourceType,omitempty"`
	AdvanceBookingDays int     `json:"advanceBookingDays"`
	MinNoticeMinutes   int     `json:"minNoticeMinutes"`
	// Level уровень, с которого взята политика: resource | type | global | default
	Level string `json:"level"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.ResourceBookingPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	resp := &PolicyResponse{
		ID:                 p.ID,
		ResourceID:         p.ResourceID,
		ResourceType:       p.ResourceType,
		AdvanceBookingDays: p.AdvanceBookingDays,
		MinNoticeMinutes:   p.MinNoticeMinutes,
		Level:              PolicyLevel(p),
	}

	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = ptr.Ptr(p.CreatedAt)
		resp.UpdatedAt = ptr.Ptr(p.UpdatedAt)
	}

	return resp
}

// PolicyLevel возвращает строковое представление уровня политики
func PolicyLevel(p *domain.ResourceBookingPolicy) string {
	switch {
	case p.ID == 0:
		return "default"
	case p.IsResourceSpecific():
		return "resource"
	case p.IsTypeWide():
		return "type"
	default:
		return "global"
	}
}

// ApplyToPolicy применяет обновления к существующей политике
// Обновляются только непустые (not nil) поля из request
func (r *UpdatePolicyRequest) ApplyToPolicy(policy *domain.ResourceBookingPolicy) {
	if r.AdvanceBookingDays != nil {
		policy.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinNoticeMinutes != nil {
		policy.MinNoticeMinutes = *r.MinNoticeMinutes
	}
}
