package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ResourceID int64           `json:"resourceId"`
	From       string          `json:"from"` // YYYY-MM-DD, включительно
	To         string          `json:"to"`   // YYYY-MM-DD, исключительно
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель свободного слота
type AvailableSlot struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Kind  string `json:"kind"` // morning | afternoon
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Date:  slot.Date.Format(domain.DateFormat),
			Kind:  string(slot.Kind),
			Start: slot.Interval.Start.Format(time.RFC3339),
			End:   slot.Interval.End.Format(time.RFC3339),
		}
	}

	return &AvailableSlotsResponse{
		ResourceID: resp.ResourceID,
		From:       resp.From.Format(domain.DateFormat),
		To:         resp.To.Format(domain.DateFormat),
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(resourceID int64, fromStr, toStr string) (*getAvailableSlots.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ResourceID: resourceID,
		From:       from,
		To:         to,
	}, nil
}
