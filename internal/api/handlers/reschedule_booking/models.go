package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	rescheduleBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/reschedule_booking"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	TargetResourceID int64  `json:"targetResourceId,omitempty"` // 0 или отсутствует = тот же ресурс
	Start            string `json:"start"`                      // ISO 8601, UTC
	End              string `json:"end"`                        // ISO 8601, UTC
	Gesture          string `json:"gesture"`                    // move | resize
	DryRun           bool   `json:"dryRun,omitempty"`
}

// DecisionResponse HTTP response model с решением движка
type DecisionResponse struct {
	Outcome    string `json:"outcome"`              // accepted | accepted_with_fallback | rejected
	Start      string `json:"start,omitempty"`      // Зафиксированный интервал (для принятых решений)
	End        string `json:"end,omitempty"`
	ResourceID int64  `json:"resourceId,omitempty"`
	Reason     string `json:"reason,omitempty"`     // Пояснение для fallback и отказов
	RejectCode string `json:"rejectCode,omitempty"` // Машинный код отказа
	Persisted  bool   `json:"persisted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(userID, bookingID int64) (*rescheduleBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		UserID:           userID,
		BookingID:        bookingID,
		TargetResourceID: r.TargetResourceID,
		ProposedStart:    start,
		ProposedEnd:      end,
		Gesture:          rescheduleBooking.Gesture(r.Gesture),
		DryRun:           r.DryRun,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *DecisionResponse {
	out := &DecisionResponse{
		Outcome:   string(resp.Decision.Outcome),
		Reason:    resp.Decision.Reason,
		Persisted: resp.Persisted,
	}

	if resp.Decision.IsAccepted() {
		out.Start = resp.Decision.Interval.Start.Format(time.RFC3339)
		out.End = resp.Decision.Interval.End.Format(time.RFC3339)
		out.ResourceID = resp.Decision.ResourceID
	}

	if resp.Decision.Outcome == domain.OutcomeRejected {
		out.RejectCode = string(resp.Decision.RejectCode)
	}

	return out
}
