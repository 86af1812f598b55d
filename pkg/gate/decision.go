// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package gate decides, for every protected request, whether the view renders
// normally, redirects, or is replaced by a blocking screen. It is the only
// component allowed to make that call; individual views must not re-implement
// these checks.
package gate

import (
	"slices"

	"github.com/creatorstack/access-service/internal/types"
)

// Verdict is the gate's answer for one request.
type Verdict int

const (
	VerdictAllow Verdict = iota
	// VerdictSignIn sends an unauthenticated caller to sign-in.
	VerdictSignIn
	// VerdictMaintenance replaces the view with the maintenance screen.
	VerdictMaintenance
	// VerdictAwaitingApproval blocks an account that has not been approved.
	VerdictAwaitingApproval
	// VerdictSuspended blocks a blocked account.
	VerdictSuspended
	// VerdictLandingRedirect silently redirects a role-allow-list miss to the
	// default landing view.
	VerdictLandingRedirect
)

func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "allow"
	case VerdictSignIn:
		return "sign_in"
	case VerdictMaintenance:
		return "maintenance"
	case VerdictAwaitingApproval:
		return "awaiting_approval"
	case VerdictSuspended:
		return "suspended"
	case VerdictLandingRedirect:
		return "landing_redirect"
	}
	return "unknown"
}

// Input is everything one decision depends on. All of it is resolved fresh
// per request; approved/blocked can change out-of-band at any time.
type Input struct {
	Authenticated bool
	// User is the stored record, nil when the identity has none yet.
	User *types.User
	// Role is the effective role from the resolver, never read off the user
	// record directly.
	Role       types.Role
	SuperAdmin bool
	Maintenance types.MaintenanceState
	// AllowedRoles restricts the view to specific roles. Empty means any
	// authenticated, approved account may pass.
	AllowedRoles []types.Role
}

// Outcome carries the verdict plus the operator-set message for the
// maintenance screen.
type Outcome struct {
	Verdict Verdict
	Message string
}

// Decide evaluates the checks in their contractual order; first match wins.
// The ordering is part of the product: an unapproved-and-blocked account sees
// "awaiting approval", not "suspended", because onboarding messaging takes
// precedence over enforcement messaging.
func Decide(in Input) Outcome {
	if !in.Authenticated {
		return Outcome{Verdict: VerdictSignIn}
	}

	// The super-admin identity bypasses every gate below this point, even
	// with no stored user record.
	if in.SuperAdmin {
		return Outcome{Verdict: VerdictAllow}
	}

	if in.Maintenance.Enabled && in.Role != types.RoleAdmin {
		return Outcome{Verdict: VerdictMaintenance, Message: in.Maintenance.Message}
	}

	approved := in.User != nil && in.User.Approved
	if in.Role != types.RoleAdmin && !approved {
		return Outcome{Verdict: VerdictAwaitingApproval}
	}

	if in.User != nil && in.User.Blocked {
		return Outcome{Verdict: VerdictSuspended}
	}

	if len(in.AllowedRoles) > 0 && in.Role != types.RoleAdmin && !slices.Contains(in.AllowedRoles, in.Role) {
		return Outcome{Verdict: VerdictLandingRedirect}
	}

	return Outcome{Verdict: VerdictAllow}
}
