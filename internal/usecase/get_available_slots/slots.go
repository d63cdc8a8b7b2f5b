package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// computeFreeSlots вычисляет свободные слоты ресурса на каждый день
// диапазона [from, to)
//
// На каждый день проверяются только утренний и дневной слоты: фоновая
// доступность показывается с гранулярностью в полдня, Full-Day как
// отдельное "свободное" предложение не отображается. День, полностью
// занятый Full-Day бронированием, не даёт ни одного свободного слота.
//
// Функция чистая: bookings не мутируется, один проход на вызов
func computeFreeSlots(bookings []*domain.Booking, from, to time.Time) []FreeSlot {
	slots := make([]FreeSlot, 0)

	for day := dateOnly(from); day.Before(dateOnly(to)); day = day.AddDate(0, 0, 1) {
		for _, kind := range []domain.SlotKind{domain.SlotMorning, domain.SlotAfternoon} {
			interval, err := domain.Materialize(kind, day)
			if err != nil {
				// Фиксированные виды слотов всегда материализуемы
				continue
			}

			if domain.IsIntervalFree(interval, bookings, 0) {
				slots = append(slots, FreeSlot{
					Date:     day,
					Kind:     kind,
					Interval: interval,
				})
			}
		}
	}

	return slots
}

// dateOnly обнуляет время, оставляя только дату в UTC
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
