// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorstack/access-service/internal/types"
)

func TestDecide(t *testing.T) {
	approvedModel := &types.User{Role: types.RoleModel, Approved: true}

	testCases := []struct {
		name     string
		in       Input
		expected Verdict
	}{
		{
			name:     "unauthenticated goes to sign-in",
			in:       Input{},
			expected: VerdictSignIn,
		},
		{
			name: "unauthenticated goes to sign-in even during maintenance",
			in: Input{
				Maintenance: types.MaintenanceState{Enabled: true},
			},
			expected: VerdictSignIn,
		},
		{
			name: "approved member passes",
			in: Input{
				Authenticated: true,
				User:          approvedModel,
				Role:          types.RoleModel,
			},
			expected: VerdictAllow,
		},
		{
			name: "maintenance blocks non-admins",
			in: Input{
				Authenticated: true,
				User:          approvedModel,
				Role:          types.RoleModel,
				Maintenance:   types.MaintenanceState{Enabled: true, Message: "back soon"},
			},
			expected: VerdictMaintenance,
		},
		{
			name: "maintenance does not block admins",
			in: Input{
				Authenticated: true,
				User:          &types.User{Role: types.RoleAdmin, Approved: true},
				Role:          types.RoleAdmin,
				Maintenance:   types.MaintenanceState{Enabled: true},
			},
			expected: VerdictAllow,
		},
		{
			name: "super admin bypasses maintenance with no stored record",
			in: Input{
				Authenticated: true,
				User:          nil,
				Role:          types.RoleAdmin,
				SuperAdmin:    true,
				Maintenance:   types.MaintenanceState{Enabled: true},
			},
			expected: VerdictAllow,
		},
		{
			name: "unapproved account is held at approval",
			in: Input{
				Authenticated: true,
				User:          &types.User{Role: types.RoleModel},
				Role:          types.RoleModel,
			},
			expected: VerdictAwaitingApproval,
		},
		{
			name: "authenticated identity with no record is held at approval",
			in: Input{
				Authenticated: true,
				Role:          types.RoleUnset,
			},
			expected: VerdictAwaitingApproval,
		},
		// Ordering contract: onboarding messaging wins over enforcement
		// messaging, so unapproved-and-blocked reads "awaiting approval".
		{
			name: "unapproved and blocked sees awaiting approval",
			in: Input{
				Authenticated: true,
				User:          &types.User{Role: types.RoleModel, Blocked: true},
				Role:          types.RoleModel,
			},
			expected: VerdictAwaitingApproval,
		},
		{
			name: "approved but blocked is suspended",
			in: Input{
				Authenticated: true,
				User:          &types.User{Role: types.RoleModel, Approved: true, Blocked: true},
				Role:          types.RoleModel,
			},
			expected: VerdictSuspended,
		},
		{
			name: "blocked admin is suspended",
			in: Input{
				Authenticated: true,
				User:          &types.User{Role: types.RoleAdmin, Approved: true, Blocked: true},
				Role:          types.RoleAdmin,
			},
			expected: VerdictSuspended,
		},
		{
			name: "role miss redirects to landing",
			in: Input{
				Authenticated: true,
				User:          approvedModel,
				Role:          types.RoleModel,
				AllowedRoles:  []types.Role{types.RoleManager},
			},
			expected: VerdictLandingRedirect,
		},
		{
			name: "role in the allow-list passes",
			in: Input{
				Authenticated: true,
				User:          approvedModel,
				Role:          types.RoleModel,
				AllowedRoles:  []types.Role{types.RoleManager, types.RoleModel},
			},
			expected: VerdictAllow,
		},
		{
			name: "admin passes every allow-list",
			in: Input{
				Authenticated: true,
				User:          &types.User{Role: types.RoleAdmin, Approved: true},
				Role:          types.RoleAdmin,
				AllowedRoles:  []types.Role{types.RoleCutter},
			},
			expected: VerdictAllow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Decide(tc.in).Verdict)
		})
	}
}

func TestDecideMaintenanceMessage(t *testing.T) {
	out := Decide(Input{
		Authenticated: true,
		User:          &types.User{Role: types.RoleModel, Approved: true},
		Role:          types.RoleModel,
		Maintenance:   types.MaintenanceState{Enabled: true, Message: "upgrading the database"},
	})

	assert.Equal(t, VerdictMaintenance, out.Verdict)
	assert.Equal(t, "upgrading the database", out.Message)
}
