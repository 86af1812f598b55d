// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package plans enforces per-plan seat capacity. Enforcement is approve-time
// only: a tenant downgraded below its current occupancy keeps every approved
// member and simply cannot approve more until attrition brings it back under
// the limit.
package plans

import (
	"github.com/creatorstack/access-service/internal/types"
)

var seatLimits = map[types.Plan]int{
	types.PlanFree:     1,
	types.PlanPro:      5,
	types.PlanBusiness: 10,
}

// SeatLimit returns the maximum number of approved memberships a plan
// permits. Unknown plans get the free limit.
func SeatLimit(plan types.Plan) int {
	if limit, ok := seatLimits[plan]; ok {
		return limit
	}
	return seatLimits[types.PlanFree]
}

// CanApprove reports whether a tenant on the given plan, with the given
// number of currently approved members, may approve one more.
func CanApprove(plan types.Plan, approvedCount int) bool {
	return approvedCount < SeatLimit(plan)
}

// RemainingSeats returns how many more members may be approved. A tenant
// over its limit after a downgrade reports zero, not a negative number.
func RemainingSeats(plan types.Plan, approvedCount int) int {
	remaining := SeatLimit(plan) - approvedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
