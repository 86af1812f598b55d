// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import "errors"

// Domain errors surfaced to the caller next to the triggering action. None of
// them is fatal to a session, and storage failures must never be folded into
// one of these.
var (
	ErrAlreadyMember       = errors.New("user already holds a membership")
	ErrAlreadyOwnsOrMember = errors.New("user already owns or belongs to a tenant")
	ErrNotOwner            = errors.New("only the tenant owner may do this")
	ErrSeatLimitReached    = errors.New("plan seat limit reached")
	ErrRoleNotEligible     = errors.New("role is not eligible to own a tenant")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrInvalidPlan         = errors.New("invalid plan")
)
