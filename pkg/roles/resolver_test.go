// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorstack/access-service/internal/types"
)

func TestEffectiveRole(t *testing.T) {
	r := NewResolver("root@creatorstack.io")

	testCases := []struct {
		name     string
		user     *types.User
		expected types.Role
	}{
		{
			name:     "nil user",
			user:     nil,
			expected: types.RoleUnset,
		},
		{
			name:     "plain manager",
			user:     &types.User{Email: "m@example.com", Role: types.RoleManager},
			expected: types.RoleManager,
		},
		{
			name:     "unset role stays unset",
			user:     &types.User{Email: "new@example.com"},
			expected: types.RoleUnset,
		},
		{
			name: "super admin overrides stored role and flags",
			user: &types.User{
				Email:    "root@creatorstack.io",
				Role:     types.RoleModel,
				Approved: false,
				Blocked:  true,
			},
			expected: types.RoleAdmin,
		},
		{
			name:     "super admin email is case-insensitive",
			user:     &types.User{Email: "Root@CreatorStack.IO", Role: types.RoleCutter},
			expected: types.RoleAdmin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.EffectiveRole(tc.user))
		})
	}
}

func TestEmptyOverrideNeverMatches(t *testing.T) {
	r := NewResolver("")

	assert.False(t, r.IsSuperAdmin(""))
	assert.False(t, r.IsSuperAdmin("anyone@example.com"))
	assert.Equal(t, types.RoleModel, r.EffectiveRole(&types.User{Email: "a@b.c", Role: types.RoleModel}))
}
