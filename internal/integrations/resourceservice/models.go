package resourceservice

// ResourceType тип бронируемого ресурса
type ResourceType string

const (
	TypeRoom      ResourceType = "room"
	TypeDesk      ResourceType = "desk"
	TypeEquipment ResourceType = "equipment"
)

// Resource модель ресурса из ResourceService
type Resource struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Type       ResourceType `json:"type"`
	Location   *string      `json:"location,omitempty"`
	ManagerIDs []int64      `json:"manager_ids"`
	IsActive   bool         `json:"is_active"`
}

// MaintenanceStatus структурированный статус обслуживания ресурса на дату
// Заменяет старую эвристику с поиском подстроки "maintenance" в теле 403 ответа
type MaintenanceStatus struct {
	IsUnderMaintenance bool    `json:"is_under_maintenance"`
	MaintenanceUntil   *string `json:"maintenance_until,omitempty"` // ISO 8601
}

// ErrorResponse модель ошибки от ResourceService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
