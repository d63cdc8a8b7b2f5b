package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID int64  `json:"resourceId"`
	Start      string `json:"start"` // ISO 8601, UTC ("2026-09-15T08:00:00Z")
	End        string `json:"end"`   // ISO 8601, UTC
	Title      string `json:"title,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	ResourceID int64  `json:"resourceId"`
	OwnerID    int64  `json:"ownerId"`
	Start      string `json:"start"`
	End        string `json:"end"`
	SlotKind   string `json:"slotKind"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим границы интервала
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		ResourceID: r.ResourceID,
		Start:      start,
		End:        end,
		Title:      r.Title,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		ResourceID: resp.ResourceID,
		OwnerID:    resp.OwnerID,
		Start:      resp.Start.Format(time.RFC3339),
		End:        resp.End.Format(time.RFC3339),
		SlotKind:   string(resp.SlotKind),
		Title:      resp.Title,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
