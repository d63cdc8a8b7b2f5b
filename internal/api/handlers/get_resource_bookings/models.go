package get_resource_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
)

// parseQueryParams разбирает query параметры фильтрации
// Поддерживаются: startDate, endDate (YYYY-MM-DD), status, includeInactive
func parseQueryParams(query url.Values, userID, resourceID int64) (*models.GetResourceBookingsRequest, error) {
	req := &models.GetResourceBookingsRequest{
		UserID:     userID,
		ResourceID: resourceID,
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.ParseInLocation(domain.DateFormat, startDateStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.ParseInLocation(domain.DateFormat, endDateStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		req.EndDate = &endDate
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("endDate must not be before startDate")
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %v", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
