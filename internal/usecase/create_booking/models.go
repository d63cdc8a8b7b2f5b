package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64     // ID пользователя-владельца
	ResourceID int64     // ID бронируемого ресурса
	Start      time.Time // Начало интервала в UTC
	End        time.Time // Конец интервала в UTC
	Title      string    // Название бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	ResourceID int64
	OwnerID    int64
	Start      time.Time
	End        time.Time
	SlotKind   domain.SlotKind
	Title      string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
