package reschedule_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func interval(t *testing.T, day int, startHour, startMin, endHour, endMin int) domain.TimeInterval {
	t.Helper()

	iv, err := domain.NewTimeInterval(
		time.Date(2026, 9, day, startHour, startMin, 0, 0, time.UTC),
		time.Date(2026, 9, day, endHour, endMin, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return iv
}

func slotInterval(t *testing.T, kind domain.SlotKind, day int) domain.TimeInterval {
	t.Helper()

	iv, err := domain.Materialize(kind, time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return iv
}

func testBooking(id, resourceID, ownerID int64, iv domain.TimeInterval) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		ResourceID: resourceID,
		OwnerID:    ownerID,
		Interval:   iv,
		Status:     domain.StatusActive,
	}
}

func moveInput(t *testing.T, booking *domain.Booking, targetDay int) resolveInput {
	t.Helper()

	kind := booking.SlotKind()
	proposed := booking.Interval
	if kind.IsFixed() {
		proposed = slotInterval(t, kind, targetDay)
	}

	return resolveInput{
		booking:          booking,
		gesture:          GestureMove,
		proposed:         proposed,
		targetResourceID: booking.ResourceID,
		now:              testNow,
	}
}

func TestResolve_MoveMorning_TargetFree(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	decision := resolve(moveInput(t, booking, 5))

	assert.Equal(t, domain.OutcomeAccepted, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotMorning, 5), decision.Interval)
	assert.Equal(t, int64(10), decision.ResourceID)
}

func TestResolve_MoveMorning_FallsBackToAfternoon(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	in := moveInput(t, booking, 5)
	in.resourceBookings = []*domain.Booking{
		testBooking(2, 10, 200, slotInterval(t, domain.SlotMorning, 5)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAcceptedWithFallback, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotAfternoon, 5), decision.Interval)
	assert.NotEmpty(t, decision.Reason)
}

func TestResolve_MoveMorning_DayFullyBooked(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	in := moveInput(t, booking, 5)
	in.resourceBookings = []*domain.Booking{
		testBooking(2, 10, 200, slotInterval(t, domain.SlotFullDay, 5)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonSlotOccupied, decision.RejectCode)
}

func TestResolve_MoveFullDay_NoFallback(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotFullDay, 2))

	in := moveInput(t, booking, 5)
	// Занята только вторая половина дня, но Full-Day не сжимается
	in.resourceBookings = []*domain.Booking{
		testBooking(2, 10, 200, slotInterval(t, domain.SlotAfternoon, 5)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonSlotOccupied, decision.RejectCode)
}

func TestResolve_MoveFullDay_TargetFree(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotFullDay, 2))

	decision := resolve(moveInput(t, booking, 5))

	assert.Equal(t, domain.OutcomeAccepted, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotFullDay, 5), decision.Interval)
}

func TestResolve_MoveCustomShort_PrefersMorning(t *testing.T) {
	// 90-минутное нестандартное бронирование нормализуется в половину дня
	booking := testBooking(1, 10, 100, interval(t, 2, 9, 0, 10, 30))

	in := moveInput(t, booking, 5)
	in.proposed = interval(t, 5, 9, 0, 10, 30)

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAccepted, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotMorning, 5), decision.Interval)
}

func TestResolve_MoveCustomShort_FallsBackThroughGrid(t *testing.T) {
	booking := testBooking(1, 10, 100, interval(t, 2, 9, 0, 10, 30))

	in := moveInput(t, booking, 5)
	in.proposed = interval(t, 5, 9, 0, 10, 30)
	in.resourceBookings = []*domain.Booking{
		testBooking(2, 10, 200, slotInterval(t, domain.SlotMorning, 5)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAcceptedWithFallback, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotAfternoon, 5), decision.Interval)
}

func TestResolve_MoveCustomLong_OnlyFullDay(t *testing.T) {
	// Больше половины дня - только Full-Day кандидат
	booking := testBooking(1, 10, 100, interval(t, 2, 9, 0, 16, 0))

	in := moveInput(t, booking, 5)
	in.proposed = interval(t, 5, 9, 0, 16, 0)
	in.resourceBookings = []*domain.Booking{
		testBooking(2, 10, 200, slotInterval(t, domain.SlotMorning, 5)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonSlotOccupied, decision.RejectCode)
}

func TestResolve_Move_SelfExcludedOnSameResource(t *testing.T) {
	// Перенос на день собственного бронирования: своё бронирование
	// не считается конфликтом
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 5))

	in := moveInput(t, booking, 5)
	in.resourceBookings = []*domain.Booking{booking}
	in.ownerBookings = []*domain.Booking{booking}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAccepted, decision.Outcome)
}

func TestResolve_Move_PastTime(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	in := moveInput(t, booking, 5)
	in.now = time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonPastTime, decision.RejectCode)
}

func TestResolve_MoveToday_FallbackIntoPastRejected(t *testing.T) {
	// Перенос вечернего бронирования на сегодня (сейчас 10:00), вечер
	// занят. Единственный запасной вариант - утро, которое уже началось:
	// отказ с кодом past_time, а не тихий перенос в прошлое
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotAfternoon, 2))

	in := moveInput(t, booking, 1)
	in.resourceBookings = []*domain.Booking{
		testBooking(2, 10, 200, slotInterval(t, domain.SlotAfternoon, 1)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonPastTime, decision.RejectCode)
}

func TestResolve_MoveToday_PastCandidateSkipped(t *testing.T) {
	// Утреннее бронирование переносится на сегодня после начала утра:
	// утренний кандидат пропускается, принимается свободный вечер
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	in := moveInput(t, booking, 1)
	in.proposed = interval(t, 1, 14, 0, 18, 0)

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAcceptedWithFallback, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotAfternoon, 1), decision.Interval)
}

func TestResolve_Move_Maintenance(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	in := moveInput(t, booking, 5)
	in.underMaintenance = true

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonResourceUnderMaintenance, decision.RejectCode)
}

func TestResolve_Move_OwnerConflictRejectsOutright(t *testing.T) {
	// Утро свободно, но у владельца пересечение на другом ресурсе.
	// Жест отклоняется целиком, без перехода к свободному вечеру
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	in := moveInput(t, booking, 5)
	in.ownerBookings = []*domain.Booking{
		testBooking(7, 99, 100, slotInterval(t, domain.SlotMorning, 5)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonOwnerHasConflict, decision.RejectCode)
}

func TestResolve_Move_OwnerBookingOnTargetResourceIgnoredByGuard(t *testing.T) {
	// Пересечения на целевом ресурсе - зона ответственности проверки
	// занятости слота, а не охранника владельца
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))

	in := moveInput(t, booking, 5)
	in.ownerBookings = []*domain.Booking{
		testBooking(7, 10, 100, slotInterval(t, domain.SlotAfternoon, 5)),
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAccepted, decision.Outcome)
}

func TestResolve_ResizeToFullDay_OtherHalfFree(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 5))

	in := resolveInput{
		booking:          booking,
		gesture:          GestureResize,
		proposed:         slotInterval(t, domain.SlotFullDay, 5),
		targetResourceID: 10,
		now:              testNow,
		resourceBookings: []*domain.Booking{booking},
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAccepted, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotFullDay, 5), decision.Interval)
}

func TestResolve_ResizeToFullDay_OtherHalfOccupied(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 5))

	in := resolveInput{
		booking:          booking,
		gesture:          GestureResize,
		proposed:         slotInterval(t, domain.SlotFullDay, 5),
		targetResourceID: 10,
		now:              testNow,
		resourceBookings: []*domain.Booking{
			booking,
			testBooking(2, 10, 200, slotInterval(t, domain.SlotAfternoon, 5)),
		},
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonOtherHalfOccupied, decision.RejectCode)
}

func TestResolve_ResizeFullDayToMorning(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotFullDay, 5))

	in := resolveInput{
		booking:          booking,
		gesture:          GestureResize,
		proposed:         slotInterval(t, domain.SlotMorning, 5),
		targetResourceID: 10,
		now:              testNow,
		resourceBookings: []*domain.Booking{booking},
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeAccepted, decision.Outcome)
	assert.Equal(t, slotInterval(t, domain.SlotMorning, 5), decision.Interval)
}

func TestResolve_Resize_OffGridShape(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 5))

	in := resolveInput{
		booking:          booking,
		gesture:          GestureResize,
		proposed:         interval(t, 5, 8, 0, 14, 0),
		targetResourceID: 10,
		now:              testNow,
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonUnrecognizedSlotShape, decision.RejectCode)
}

func TestResolve_ResizeCustomToFullDay_Rejected(t *testing.T) {
	// У нестандартного бронирования нет "второй половины"
	booking := testBooking(1, 10, 100, interval(t, 5, 9, 0, 10, 30))

	in := resolveInput{
		booking:          booking,
		gesture:          GestureResize,
		proposed:         slotInterval(t, domain.SlotFullDay, 5),
		targetResourceID: 10,
		now:              testNow,
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonUnrecognizedSlotShape, decision.RejectCode)
}

func TestResolve_ResizeToFullDay_OwnerConflict(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 5))

	in := resolveInput{
		booking:          booking,
		gesture:          GestureResize,
		proposed:         slotInterval(t, domain.SlotFullDay, 5),
		targetResourceID: 10,
		now:              testNow,
		resourceBookings: []*domain.Booking{booking},
		ownerBookings: []*domain.Booking{
			booking,
			testBooking(7, 99, 100, slotInterval(t, domain.SlotAfternoon, 5)),
		},
	}

	decision := resolve(in)

	assert.Equal(t, domain.OutcomeRejected, decision.Outcome)
	assert.Equal(t, domain.ReasonOwnerHasConflict, decision.RejectCode)
}

func TestMoveCandidates(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.SlotKind
		duration time.Duration
		want     []domain.SlotKind
	}{
		{
			name: "morning prefers morning",
			kind: domain.SlotMorning,
			want: []domain.SlotKind{domain.SlotMorning, domain.SlotAfternoon},
		},
		{
			name: "afternoon prefers afternoon",
			kind: domain.SlotAfternoon,
			want: []domain.SlotKind{domain.SlotAfternoon, domain.SlotMorning},
		},
		{
			name: "full day has no fallback",
			kind: domain.SlotFullDay,
			want: []domain.SlotKind{domain.SlotFullDay},
		},
		{
			name:     "short custom tries the whole grid",
			kind:     domain.SlotCustom,
			duration: 4 * time.Hour,
			want:     []domain.SlotKind{domain.SlotMorning, domain.SlotAfternoon, domain.SlotFullDay},
		},
		{
			name:     "long custom only full day",
			kind:     domain.SlotCustom,
			duration: 5 * time.Hour,
			want:     []domain.SlotKind{domain.SlotFullDay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moveCandidates(tt.kind, tt.duration))
		})
	}
}
