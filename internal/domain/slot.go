package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SlotKind is one of the fixed daily booking granularities.
type SlotKind string

const (
	SlotMorning   SlotKind = "morning"
	SlotAfternoon SlotKind = "afternoon"
	SlotFullDay   SlotKind = "full_day"
	// SlotCustom marks an interval that matches none of the fixed slots.
	// Custom intervals can be classified but never materialized or booked.
	SlotCustom SlotKind = "custom"
)

// ErrCustomSlot is returned when trying to materialize SlotCustom,
// which has no fixed boundaries.
var ErrCustomSlot = errors.New("domain: custom slot has no fixed boundaries")

// slotBoundaries wall-clock boundaries of a fixed slot kind.
type slotBoundaries struct {
	start types.TimeString
	end   types.TimeString
}

// The fixed slot grid. Full-Day is the union of Morning and Afternoon but
// is booked as its own atomic slot; the 12:00-13:00 gap is unbookable
// buffer time.
var slotGrid = map[SlotKind]slotBoundaries{
	SlotMorning:   {start: MorningStartTime, end: MorningEndTime},
	SlotAfternoon: {start: AfternoonStartTime, end: AfternoonEndTime},
	SlotFullDay:   {start: MorningStartTime, end: AfternoonEndTime},
}

// Classify maps an interval onto the fixed slot grid by its wall-clock
// start and end in UTC, ignoring the date. Only exact boundary matches
// count; everything else, including intervals spanning more than one
// calendar day, is SlotCustom.
func Classify(interval TimeInterval) SlotKind {
	start := interval.Start.UTC()
	end := interval.End.UTC()

	// A fixed slot never crosses midnight.
	if start.Year() != end.Year() || start.YearDay() != end.YearDay() {
		return SlotCustom
	}
	if start.Second() != 0 || start.Nanosecond() != 0 || end.Second() != 0 || end.Nanosecond() != 0 {
		return SlotCustom
	}

	startClock := types.NewTimeString(start)
	endClock := types.NewTimeString(end)

	for kind, bounds := range slotGrid {
		if startClock == bounds.start && endClock == bounds.end {
			return kind
		}
	}

	return SlotCustom
}

// Materialize builds the concrete UTC interval of a slot kind on the
// given calendar date. SlotCustom cannot be materialized.
func Materialize(kind SlotKind, date time.Time) (TimeInterval, error) {
	bounds, ok := slotGrid[kind]
	if !ok {
		return TimeInterval{}, fmt.Errorf("%w: kind=%s", ErrCustomSlot, kind)
	}

	date = date.UTC()
	return TimeInterval{
		Start: clockOnDate(bounds.start, date),
		End:   clockOnDate(bounds.end, date),
	}, nil
}

// OtherHalf returns the complementary half-day slot, or false when the
// kind has no complement.
func OtherHalf(kind SlotKind) (SlotKind, bool) {
	switch kind {
	case SlotMorning:
		return SlotAfternoon, true
	case SlotAfternoon:
		return SlotMorning, true
	default:
		return SlotCustom, false
	}
}

// IsFixed reports whether the kind is one of the three bookable grid slots.
func (k SlotKind) IsFixed() bool {
	return k == SlotMorning || k == SlotAfternoon || k == SlotFullDay
}

// clockOnDate places an "HH:MM" wall-clock time on a UTC calendar date.
// Grid boundaries are compile-time constants, so the parse cannot fail.
func clockOnDate(clock types.TimeString, date time.Time) time.Time {
	parsed, err := time.Parse(TimeFormat, clock.String())
	if err != nil {
		panic(fmt.Sprintf("domain: invalid slot grid boundary %q: %v", clock, err))
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}
