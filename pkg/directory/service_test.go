// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/storage"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package directory -destination ./mock_directory.go -source=./interfaces.go

type serviceFixture struct {
	service *Service
	storage *MockStorageInterface
}

func newTestService(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		storage: NewMockStorageInterface(ctrl),
	}
	f.service = NewService(f.storage,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return f
}

func TestProvisionUser(t *testing.T) {
	t.Run("creates an unapproved record with no role", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *types.User) (*types.User, error) {
				assert.Equal(t, "identity-1", u.ID)
				assert.Equal(t, "new@example.com", u.Email)
				assert.Equal(t, types.RoleUnset, u.Role)
				assert.False(t, u.Approved)
				assert.False(t, u.Blocked)
				assert.Nil(t, u.TenantID)
				return u, nil
			})

		user, err := f.service.ProvisionUser(context.Background(), "identity-1", "new@example.com", "New User", "")

		require.NoError(t, err)
		assert.Equal(t, "identity-1", user.ID)
	})

	t.Run("a webhook replay returns the existing record", func(t *testing.T) {
		f := newTestService(t)
		existing := &types.User{ID: "identity-1", Email: "new@example.com", Role: types.RoleModel, Approved: true}
		f.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
		f.storage.EXPECT().GetUserByID(gomock.Any(), "identity-1").Return(existing, nil)

		user, err := f.service.ProvisionUser(context.Background(), "identity-1", "new@example.com", "New User", "")

		require.NoError(t, err)
		assert.Equal(t, existing, user)
	})

	t.Run("rejects a payload without an identity ID", func(t *testing.T) {
		f := newTestService(t)

		_, err := f.service.ProvisionUser(context.Background(), "", "new@example.com", "", "")

		assert.Error(t, err)
	})

	t.Run("rejects a payload without an email", func(t *testing.T) {
		f := newTestService(t)

		_, err := f.service.ProvisionUser(context.Background(), "identity-1", "", "", "")

		assert.Error(t, err)
	})
}

func TestProfile(t *testing.T) {
	t.Run("returns the stored record", func(t *testing.T) {
		f := newTestService(t)
		u := &types.User{ID: "user-1", Email: "m@example.com"}
		f.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(u, nil)

		got, err := f.service.Profile(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, u, got)
	})

	t.Run("maps a missing record to the domain error", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().GetUserByID(gomock.Any(), "nobody").Return(nil, storage.ErrNotFound)

		_, err := f.service.Profile(context.Background(), "nobody")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSelectRole(t *testing.T) {
	t.Run("sets the role once", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").
			Return(&types.User{ID: "user-1", Role: types.RoleUnset}, nil)
		f.storage.EXPECT().SetUserRole(gomock.Any(), "user-1", types.RoleModel).Return(nil)

		user, err := f.service.SelectRole(context.Background(), "user-1", types.RoleModel)

		require.NoError(t, err)
		assert.Equal(t, types.RoleModel, user.Role)
	})

	t.Run("a second choice is rejected", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").
			Return(&types.User{ID: "user-1", Role: types.RoleModel}, nil)

		_, err := f.service.SelectRole(context.Background(), "user-1", types.RoleCutter)

		assert.ErrorIs(t, err, ErrRoleAlreadySet)
	})

	t.Run("admin is not a selectable role", func(t *testing.T) {
		f := newTestService(t)

		_, err := f.service.SelectRole(context.Background(), "user-1", types.RoleAdmin)

		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("unset is not a selectable role", func(t *testing.T) {
		f := newTestService(t)

		_, err := f.service.SelectRole(context.Background(), "user-1", types.RoleUnset)

		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestAdminControls(t *testing.T) {
	t.Run("approval flips the stored flag", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().SetUserApproval(gomock.Any(), "user-1", true).Return(nil)

		err := f.service.SetApproval(context.Background(), "admin-1", "user-1", true)

		assert.NoError(t, err)
	})

	t.Run("approval of an unknown user is a not-found", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().SetUserApproval(gomock.Any(), "nobody", true).Return(storage.ErrNotFound)

		err := f.service.SetApproval(context.Background(), "admin-1", "nobody", true)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("blocking flips the stored flag", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().SetUserBlocked(gomock.Any(), "user-1", true).Return(nil)

		err := f.service.SetBlocked(context.Background(), "admin-1", "user-1", true)

		assert.NoError(t, err)
	})

	t.Run("storage failures are not masked", func(t *testing.T) {
		f := newTestService(t)
		boom := errors.New("connection reset")
		f.storage.EXPECT().SetUserBlocked(gomock.Any(), "user-1", false).Return(boom)

		err := f.service.SetBlocked(context.Background(), "admin-1", "user-1", false)

		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})
}

func TestMaintenance(t *testing.T) {
	t.Run("reads the stored state", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().GetMaintenance(gomock.Any()).
			Return(&types.MaintenanceState{Enabled: true, Message: "back soon"}, nil)

		state, err := f.service.Maintenance(context.Background())

		require.NoError(t, err)
		assert.True(t, state.Enabled)
		assert.Equal(t, "back soon", state.Message)
	})

	t.Run("writes the new state", func(t *testing.T) {
		f := newTestService(t)
		f.storage.EXPECT().SetMaintenance(gomock.Any(), true, "migration underway").Return(nil)

		err := f.service.SetMaintenance(context.Background(), "admin-1", true, "migration underway")

		assert.NoError(t, err)
	})
}
