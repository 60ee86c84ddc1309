package service

import "time"

// DefaultDailyTokenLimit is the ceiling applied when no explicit limit is configured.
const DefaultDailyTokenLimit = 50

// CapacityPolicy maps (doctor, date) to the maximum number of issuable tokens.
// Implementations must be pure: no I/O, deterministic for the same arguments.
type CapacityPolicy interface {
	LimitFor(doctorName string, date time.Time) int
}

type fixedCapacityPolicy struct {
	limit int
}

// NewFixedCapacityPolicy returns a policy applying the same ceiling to every
// doctor and day. Non-positive limits fall back to DefaultDailyTokenLimit.
func NewFixedCapacityPolicy(limit int) CapacityPolicy {
	if limit <= 0 {
		limit = DefaultDailyTokenLimit
	}
	return &fixedCapacityPolicy{limit: limit}
}

func (p *fixedCapacityPolicy) LimitFor(doctorName string, date time.Time) int {
	return p.limit
}
