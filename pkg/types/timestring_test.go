package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning start", input: "08:00", want: "08:00"},
		{name: "valid afternoon start", input: "13:00", want: "13:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "8:00", wantErr: true},
		{name: "with seconds", input: "08:00:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "08:60", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 8, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("08:30"), NewTimeString(moment))
}

func TestTimeString_Ordering(t *testing.T) {
	morning := TimeString("08:00")
	afternoon := TimeString("13:00")

	assert.True(t, morning.IsBefore(afternoon))
	assert.False(t, afternoon.IsBefore(morning))
	assert.True(t, afternoon.IsAfter(morning))
	assert.False(t, morning.IsAfter(morning))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within the same day", func(t *testing.T) {
		got, err := TimeString("08:00").AddMinutes(240)
		require.NoError(t, err)
		assert.Equal(t, TimeString("12:00"), got)
	})

	t.Run("crossing midnight fails", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})

	t.Run("invalid source value fails", func(t *testing.T) {
		_, err := TimeString("not-a-time").AddMinutes(30)
		require.Error(t, err)
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		v, err := TimeString("17:00").Value()
		require.NoError(t, err)
		assert.Equal(t, "17:00", v)
	})

	t.Run("zero value maps to NULL", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("invalid value fails", func(t *testing.T) {
		_, err := TimeString("25:00").Value()
		require.Error(t, err)
	})
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres TIME with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("08:00:00"))
		assert.Equal(t, TimeString("08:00"), ts)
	})

	t.Run("plain string", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("13:00"))
		assert.Equal(t, TimeString("13:00"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("17:00:00")))
		assert.Equal(t, TimeString("17:00"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("12:00"), ts)
	})

	t.Run("NULL resets to zero value", func(t *testing.T) {
		ts := TimeString("08:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type fails", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan(42)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}
