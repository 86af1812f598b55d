// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package roles derives a user's effective role for access decisions.
package roles

import (
	"strings"

	"github.com/creatorstack/access-service/internal/types"
)

// Resolver computes effective roles. The super-admin override is injected at
// construction so the policy is visible in configuration and testable like
// any other rule.
type Resolver struct {
	superAdminEmail string
}

func NewResolver(superAdminEmail string) *Resolver {
	return &Resolver{
		superAdminEmail: strings.ToLower(strings.TrimSpace(superAdminEmail)),
	}
}

// EffectiveRole returns the role access decisions must use. The super-admin
// identity is admin regardless of stored role or flags. Results must not be
// cached across requests: approved/blocked can change out-of-band and the
// override is re-derived on every check by design.
func (r *Resolver) EffectiveRole(u *types.User) types.Role {
	if u == nil {
		return types.RoleUnset
	}

	if r.IsSuperAdmin(u.Email) {
		return types.RoleAdmin
	}

	return u.Role
}

// IsSuperAdmin reports whether the email is the configured override
// identity. Comparison is case-insensitive; emails are.
func (r *Resolver) IsSuperAdmin(email string) bool {
	return r.superAdminEmail != "" &&
		strings.EqualFold(strings.TrimSpace(email), r.superAdminEmail)
}
