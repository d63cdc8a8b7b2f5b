package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) TimeInterval {
	t.Helper()

	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)

	interval, err := NewTimeInterval(s, e)
	require.NoError(t, err)
	return interval
}

func TestNewTimeInterval(t *testing.T) {
	start := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		interval, err := NewTimeInterval(start, start.Add(4*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 4*time.Hour, interval.Duration())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := NewTimeInterval(start, start)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := NewTimeInterval(start.Add(time.Hour), start)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestTimeInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{
			name: "identical intervals",
			a:    mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
			b:    mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
			want: true,
		},
		{
			name: "partial overlap",
			a:    mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
			b:    mustInterval(t, "2024-06-03T11:00:00Z", "2024-06-03T15:00:00Z"),
			want: true,
		},
		{
			name: "containment",
			a:    mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T17:00:00Z"),
			b:    mustInterval(t, "2024-06-03T13:00:00Z", "2024-06-03T17:00:00Z"),
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
			b:    mustInterval(t, "2024-06-03T12:00:00Z", "2024-06-03T16:00:00Z"),
			want: false,
		},
		{
			name: "disjoint",
			a:    mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
			b:    mustInterval(t, "2024-06-04T08:00:00Z", "2024-06-04T12:00:00Z"),
			want: false,
		},
		{
			name: "morning and afternoon separated by buffer hour",
			a:    mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
			b:    mustInterval(t, "2024-06-03T13:00:00Z", "2024-06-03T17:00:00Z"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeInterval_Date(t *testing.T) {
	interval := mustInterval(t, "2024-06-03T13:00:00Z", "2024-06-03T17:00:00Z")
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), interval.Date())
}
