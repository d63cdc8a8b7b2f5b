package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// resolveInput снимок всех данных, нужных для принятия решения.
// Резолвер - чистая функция над этим снимком: никаких обращений к БД
// или внешним сервисам, одно и то же решение для одного и того же входа
type resolveInput struct {
	booking          *domain.Booking
	gesture          Gesture
	proposed         domain.TimeInterval
	targetResourceID int64
	now              time.Time
	underMaintenance bool

	// Активные бронирования целевого ресурса на дату proposed
	resourceBookings []*domain.Booking
	// Активные бронирования владельца на дату proposed по всем ресурсам
	ownerBookings []*domain.Booking
}

// resolve принимает решение по жесту переноса
//
// Порядок проверок фиксированный: прошлое время и обслуживание ресурса
// отсекаются до разбора формы слота, чтобы отказ не зависел от того,
// свободен ли слот
func resolve(in resolveInput) domain.RescheduleDecision {
	if !in.proposed.Start.After(in.now) {
		return domain.Rejected(domain.ReasonPastTime, "proposed time is in the past")
	}

	if in.underMaintenance {
		return domain.Rejected(domain.ReasonResourceUnderMaintenance, "resource is under maintenance on the proposed date")
	}

	switch in.gesture {
	case GestureResize:
		return resolveResize(in)
	default:
		return resolveMove(in)
	}
}

// resolveMove пробует кандидатов в порядке приоритета: сначала слот,
// сохраняющий вид исходного бронирования, затем запасные варианты.
// Первый свободный кандидат принимается; конфликт владельца на
// принимаемом кандидате отклоняет жест целиком, без перехода к
// следующему кандидату
func resolveMove(in resolveInput) domain.RescheduleDecision {
	date := in.proposed.Date()
	candidates := moveCandidates(in.booking.SlotKind(), in.booking.Interval.Duration())

	pastCandidate := false
	for idx, kind := range candidates {
		candidate, err := domain.Materialize(kind, date)
		if err != nil {
			continue
		}

		// Материализованный кандидат может начинаться раньше
		// предложенного интервала и при переносе на сегодня уже
		// оказаться в прошлом
		if !candidate.Start.After(in.now) {
			pastCandidate = true
			continue
		}

		if !domain.IsIntervalFree(candidate, in.resourceBookings, in.booking.ID) {
			continue
		}

		if domain.OwnerHasOverlap(candidate, in.targetResourceID, in.ownerBookings, in.booking.ID) {
			return domain.Rejected(domain.ReasonOwnerHasConflict,
				"owner already has a booking overlapping this interval")
		}

		if idx == 0 {
			return domain.Accepted(candidate, in.targetResourceID)
		}
		return domain.AcceptedWithFallback(candidate, in.targetResourceID,
			fmt.Sprintf("original slot unavailable, moved to %s", kind))
	}

	if pastCandidate {
		return domain.Rejected(domain.ReasonPastTime,
			"no slot candidate starts in the future on the requested date")
	}
	return domain.Rejected(domain.ReasonSlotOccupied, "no suitable slot is free on the requested date")
}

// moveCandidates возвращает виды слотов в порядке убывания приоритета
// для переноса бронирования данного вида
//
// Full-Day переносится только в Full-Day: молчаливое сжатие целого дня
// до половины стало бы сюрпризом для владельца. Нестандартные интервалы
// длительностью до половины дня пробуют обе половины, затем целый день;
// более длинные - только целый день
func moveCandidates(kind domain.SlotKind, duration time.Duration) []domain.SlotKind {
	switch kind {
	case domain.SlotMorning:
		return []domain.SlotKind{domain.SlotMorning, domain.SlotAfternoon}
	case domain.SlotAfternoon:
		return []domain.SlotKind{domain.SlotAfternoon, domain.SlotMorning}
	case domain.SlotFullDay:
		return []domain.SlotKind{domain.SlotFullDay}
	default:
		if duration <= time.Duration(domain.HalfDayMinutes)*time.Minute {
			return []domain.SlotKind{domain.SlotMorning, domain.SlotAfternoon, domain.SlotFullDay}
		}
		return []domain.SlotKind{domain.SlotFullDay}
	}
}

// resolveResize принимает решение по изменению длительности.
// Запасных вариантов у resize нет: целевая форма либо точно ложится на
// сетку, либо жест отклоняется
func resolveResize(in resolveInput) domain.RescheduleDecision {
	switch domain.Classify(in.proposed) {
	case domain.SlotMorning, domain.SlotAfternoon:
		// Сжатие до половины дня остаётся внутри исходного интервала
		// и не может породить новых конфликтов
		return domain.Accepted(in.proposed, in.targetResourceID)

	case domain.SlotFullDay:
		return resolveResizeToFullDay(in)

	default:
		return domain.Rejected(domain.ReasonUnrecognizedSlotShape,
			"interval must align to the Morning, Afternoon, or Full Day slot")
	}
}

// resolveResizeToFullDay расширяет полудневное бронирование до целого
// дня. Требует, чтобы вторая половина дня была свободна
func resolveResizeToFullDay(in resolveInput) domain.RescheduleDecision {
	otherKind, ok := domain.OtherHalf(in.booking.SlotKind())
	if !ok {
		// Исходное бронирование не является половиной дня -
		// расширять нечего
		return domain.Rejected(domain.ReasonUnrecognizedSlotShape,
			"only a Morning or Afternoon booking can be resized to Full Day")
	}

	otherHalf, err := domain.Materialize(otherKind, in.proposed.Date())
	if err != nil {
		return domain.Rejected(domain.ReasonUnrecognizedSlotShape,
			"only a Morning or Afternoon booking can be resized to Full Day")
	}

	if !domain.IsIntervalFree(otherHalf, in.resourceBookings, in.booking.ID) {
		return domain.Rejected(domain.ReasonOtherHalfOccupied,
			"the other half of the day is already booked")
	}

	if domain.OwnerHasOverlap(in.proposed, in.targetResourceID, in.ownerBookings, in.booking.ID) {
		return domain.Rejected(domain.ReasonOwnerHasConflict,
			"owner already has a booking overlapping this interval")
	}

	return domain.Accepted(in.proposed, in.targetResourceID)
}
