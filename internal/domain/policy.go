package domain

import "time"

// ResourceBookingPolicy represents booking limits for a resource.
// Supports hierarchical configuration:
// 1. Specific resource (resource_id set)
// 2. Resource type wide (resource_type set, e.g. all desks)
// 3. Global (both nil)
type ResourceBookingPolicy struct {
	ID           int64
	ResourceID   *int64  // NULL = policy for all resources (of a type)
	ResourceType *string // NULL = not type-scoped
	// AdvanceBookingDays limits how far ahead a slot can be booked; 0 = unlimited
	AdvanceBookingDays int
	// MinNoticeMinutes is the minimum lead time before a slot's start
	MinNoticeMinutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsGlobal returns true if this is the global fallback policy
func (p *ResourceBookingPolicy) IsGlobal() bool {
	return p.ResourceID == nil && p.ResourceType == nil
}

// IsTypeWide returns true if this policy applies to a whole resource type
func (p *ResourceBookingPolicy) IsTypeWide() bool {
	return p.ResourceID == nil && p.ResourceType != nil
}

// IsResourceSpecific returns true if this policy targets a single resource
func (p *ResourceBookingPolicy) IsResourceSpecific() bool {
	return p.ResourceID != nil
}

// HasAdvanceLimit returns true if there's a limit on how far in advance bookings can be made
func (p *ResourceBookingPolicy) HasAdvanceLimit() bool {
	return p.AdvanceBookingDays > 0
}

// DefaultPolicy returns the policy applied when no row matches a resource.
func DefaultPolicy() *ResourceBookingPolicy {
	return &ResourceBookingPolicy{
		AdvanceBookingDays: DefaultAdvanceBookingDays,
		MinNoticeMinutes:   DefaultMinNoticeMinutes,
	}
}
