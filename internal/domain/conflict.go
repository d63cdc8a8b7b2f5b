package domain

// The shared conflict checks. Both the availability computation and the
// reschedule resolver call these; the logic deliberately lives in one
// place instead of per caller.

// FindOverlap returns the first active booking whose interval overlaps
// the candidate, or nil. The booking with id == excludeID is skipped so a
// booking can be checked against "everything except itself" during a move
// or resize; pass 0 to exclude nothing.
func FindOverlap(candidate TimeInterval, bookings []*Booking, excludeID int64) *Booking {
	for _, booking := range bookings {
		if excludeID != 0 && booking.ID == excludeID {
			continue
		}
		if !booking.IsActive() {
			continue
		}
		if candidate.Overlaps(booking.Interval) {
			return booking
		}
	}
	return nil
}

// IsIntervalFree reports whether the candidate overlaps no active booking
// in the list, excluding the booking with id == excludeID.
func IsIntervalFree(candidate TimeInterval, bookings []*Booking, excludeID int64) bool {
	return FindOverlap(candidate, bookings, excludeID) == nil
}

// OwnerHasOverlap reports whether the candidate overlaps any of the
// owner's active bookings on a *different* resource. A user must never
// hold two simultaneous bookings, even across resources; same-resource
// overlaps are the resource conflict check's job. ownerBookings is the
// pre-fetched list of the acting user's bookings across all resources on
// the candidate's date; excludeID skips the booking being modified.
func OwnerHasOverlap(candidate TimeInterval, targetResourceID int64, ownerBookings []*Booking, excludeID int64) bool {
	for _, booking := range ownerBookings {
		if excludeID != 0 && booking.ID == excludeID {
			continue
		}
		if booking.ResourceID == targetResourceID {
			continue
		}
		if !booking.IsActive() {
			continue
		}
		if candidate.Overlaps(booking.Interval) {
			return true
		}
	}
	return false
}
