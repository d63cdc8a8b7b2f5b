package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Gesture тип пользовательского жеста переноса
type Gesture string

const (
	// GestureMove перенос бронирования на другую дату и/или ресурс
	// с сохранением вида слота
	GestureMove Gesture = "move"
	// GestureResize изменение длительности бронирования в рамках
	// того же ресурса и даты
	GestureResize Gesture = "resize"
)

// Request модель запроса на перенос бронирования
type Request struct {
	UserID    int64 // ID пользователя, выполняющего жест
	BookingID int64 // ID переносимого бронирования

	// TargetResourceID целевой ресурс; 0 означает "тот же ресурс"
	TargetResourceID int64

	// Предложенный интервал в UTC
	ProposedStart time.Time
	ProposedEnd   time.Time

	Gesture Gesture

	// DryRun: вернуть решение, ничего не записывая. Решение dry-run
	// консультативное - авторитетная проверка происходит только внутри
	// сериализуемой транзакции при реальном переносе
	DryRun bool
}

// Response модель ответа с решением движка
type Response struct {
	Decision  domain.RescheduleDecision
	Persisted bool // true, если изменение записано в хранилище
}
