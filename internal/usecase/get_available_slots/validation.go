package get_available_slots

import "fmt"

// MaxRangeDays максимальная ширина диапазона дат в одном запросе
const MaxRangeDays = 92

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if !req.From.Before(req.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidRange)
	}

	if int(req.To.Sub(req.From).Hours()/24) > MaxRangeDays {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooWide, MaxRangeDays)
	}

	return nil
}
