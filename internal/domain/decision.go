package domain

// DecisionOutcome is the top-level verdict of a reschedule decision.
type DecisionOutcome string

const (
	OutcomeAccepted             DecisionOutcome = "accepted"
	OutcomeAcceptedWithFallback DecisionOutcome = "accepted_with_fallback"
	OutcomeRejected             DecisionOutcome = "rejected"
)

// RejectReason is the closed set of machine-readable rejection codes.
// Callers can match on these exhaustively; Reason carries the
// human-readable explanation.
type RejectReason string

const (
	ReasonSlotOccupied             RejectReason = "slot_occupied"
	ReasonPastTime                 RejectReason = "past_time"
	ReasonResourceUnderMaintenance RejectReason = "resource_under_maintenance"
	ReasonOwnerHasConflict         RejectReason = "owner_has_conflict"
	ReasonUnrecognizedSlotShape    RejectReason = "unrecognized_slot_shape"
	ReasonOtherHalfOccupied        RejectReason = "other_half_occupied"
)

// RescheduleDecision is the engine's answer to a move or resize gesture.
// It is returned, never thrown: every resolution outcome is data, and the
// caller commits or reverts based on it.
type RescheduleDecision struct {
	Outcome    DecisionOutcome
	Interval   TimeInterval // the interval to commit, set on accepted outcomes
	ResourceID int64        // the resource to commit to, set on accepted outcomes
	Reason     string       // human-readable, set for fallbacks and rejections
	RejectCode RejectReason // set only when Outcome == OutcomeRejected
}

// Accepted builds a decision committing the exact requested interval.
func Accepted(interval TimeInterval, resourceID int64) RescheduleDecision {
	return RescheduleDecision{
		Outcome:    OutcomeAccepted,
		Interval:   interval,
		ResourceID: resourceID,
	}
}

// AcceptedWithFallback builds a decision committing an interval that
// deviates from the gesture's literal intent.
func AcceptedWithFallback(interval TimeInterval, resourceID int64, reason string) RescheduleDecision {
	return RescheduleDecision{
		Outcome:    OutcomeAcceptedWithFallback,
		Interval:   interval,
		ResourceID: resourceID,
		Reason:     reason,
	}
}

// Rejected builds a rejecting decision with a machine code and a
// human-readable reason.
func Rejected(code RejectReason, reason string) RescheduleDecision {
	return RescheduleDecision{
		Outcome:    OutcomeRejected,
		Reason:     reason,
		RejectCode: code,
	}
}

// IsAccepted returns true for both accepted outcomes.
func (d RescheduleDecision) IsAccepted() bool {
	return d.Outcome == OutcomeAccepted || d.Outcome == OutcomeAcceptedWithFallback
}
