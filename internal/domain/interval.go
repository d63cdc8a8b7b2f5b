package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned when an interval is constructed with
// start >= end. It is the only construction failure the engine reports;
// every other outcome is a decision, not an error.
var ErrInvalidInterval = errors.New("domain: invalid time interval")

// TimeInterval is a half-open time range [Start, End).
// The start instant belongs to the interval, the end instant does not,
// so intervals that only touch at an endpoint do not overlap.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval constructs a TimeInterval, rejecting start >= end.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect:
// a.Start < b.End && b.Start < a.End. Symmetric; false for intervals
// that merely share an endpoint.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration returns the length of the interval.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Date returns the UTC calendar date (midnight) the interval starts on.
func (i TimeInterval) Date() time.Time {
	start := i.Start.UTC()
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether both intervals start on the same UTC calendar date.
func (i TimeInterval) SameDate(other TimeInterval) bool {
	return i.Date().Equal(other.Date())
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}
