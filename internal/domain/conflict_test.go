package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func booking(t *testing.T, id, resourceID, ownerID int64, start, end string) *Booking {
	t.Helper()
	return &Booking{
		ID:         id,
		ResourceID: resourceID,
		OwnerID:    ownerID,
		Interval:   mustInterval(t, start, end),
		Status:     StatusActive,
	}
}

func TestIsIntervalFree(t *testing.T) {
	existing := []*Booking{
		booking(t, 1, 10, 100, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
		booking(t, 2, 10, 101, "2024-06-04T13:00:00Z", "2024-06-04T17:00:00Z"),
	}

	t.Run("free slot", func(t *testing.T) {
		candidate := mustInterval(t, "2024-06-03T13:00:00Z", "2024-06-03T17:00:00Z")
		assert.True(t, IsIntervalFree(candidate, existing, 0))
	})

	t.Run("occupied slot", func(t *testing.T) {
		candidate := mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z")
		assert.False(t, IsIntervalFree(candidate, existing, 0))
	})

	t.Run("self exclusion ignores identical interval", func(t *testing.T) {
		candidate := mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z")
		assert.True(t, IsIntervalFree(candidate, existing, 1))
	})

	t.Run("cancelled bookings do not occupy", func(t *testing.T) {
		cancelled := booking(t, 3, 10, 100, "2024-06-05T08:00:00Z", "2024-06-05T12:00:00Z")
		cancelled.Status = StatusCancelledByOwner

		candidate := mustInterval(t, "2024-06-05T08:00:00Z", "2024-06-05T12:00:00Z")
		assert.True(t, IsIntervalFree(candidate, []*Booking{cancelled}, 0))
	})

	t.Run("empty list is always free", func(t *testing.T) {
		candidate := mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T17:00:00Z")
		assert.True(t, IsIntervalFree(candidate, nil, 0))
	})
}

func TestFindOverlap(t *testing.T) {
	existing := []*Booking{
		booking(t, 1, 10, 100, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
	}

	candidate := mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T17:00:00Z")
	found := FindOverlap(candidate, existing, 0)
	assert.NotNil(t, found)
	assert.Equal(t, int64(1), found.ID)

	assert.Nil(t, FindOverlap(candidate, existing, 1))
}

func TestOwnerHasOverlap(t *testing.T) {
	// Owner 100 holds a morning booking on resource 20
	ownerBookings := []*Booking{
		booking(t, 5, 20, 100, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z"),
	}

	morning := mustInterval(t, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z")
	afternoon := mustInterval(t, "2024-06-03T13:00:00Z", "2024-06-03T17:00:00Z")

	t.Run("overlap on another resource", func(t *testing.T) {
		assert.True(t, OwnerHasOverlap(morning, 10, ownerBookings, 0))
	})

	t.Run("no overlap on another resource", func(t *testing.T) {
		assert.False(t, OwnerHasOverlap(afternoon, 10, ownerBookings, 0))
	})

	t.Run("same resource is not the guard's job", func(t *testing.T) {
		assert.False(t, OwnerHasOverlap(morning, 20, ownerBookings, 0))
	})

	t.Run("booking under modification is excluded", func(t *testing.T) {
		assert.False(t, OwnerHasOverlap(morning, 10, ownerBookings, 5))
	})

	t.Run("cancelled bookings are ignored", func(t *testing.T) {
		cancelled := booking(t, 6, 30, 100, "2024-06-03T08:00:00Z", "2024-06-03T12:00:00Z")
		cancelled.Status = StatusCancelledByManager
		assert.False(t, OwnerHasOverlap(morning, 10, []*Booking{cancelled}, 0))
	})
}
