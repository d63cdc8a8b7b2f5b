package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	UserID     int64     // ID пользователя (для логирования, не влияет на результат)
	ResourceID int64     // ID ресурса
	From       time.Time // Начало диапазона дат (включительно, без времени)
	To         time.Time // Конец диапазона дат (исключительно, без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ResourceID int64      // ID ресурса
	From       time.Time  // Начало диапазона
	To         time.Time  // Конец диапазона (исключительно)
	Slots      []FreeSlot // Свободные слоты по дням
}

// FreeSlot свободный слот фиксированной сетки на конкретную дату
type FreeSlot struct {
	Date     time.Time           // Дата (без времени, UTC)
	Kind     domain.SlotKind     // morning или afternoon
	Interval domain.TimeInterval // Конкретный интервал слота
}
