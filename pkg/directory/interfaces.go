// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"

	"github.com/creatorstack/access-service/internal/types"
)

type ServiceInterface interface {
	ProvisionUser(ctx context.Context, identityID, email, displayName, avatarURL string) (*types.User, error)
	Profile(ctx context.Context, userID string) (*types.User, error)
	SelectRole(ctx context.Context, userID string, role types.Role) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	SetApproval(ctx context.Context, actorID, userID string, approved bool) error
	SetBlocked(ctx context.Context, actorID, userID string, blocked bool) error
	Maintenance(ctx context.Context) (*types.MaintenanceState, error)
	SetMaintenance(ctx context.Context, actorID string, enabled bool, message string) error
}

// StorageInterface is the subset of the storage layer the directory needs.
type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	SetUserRole(ctx context.Context, id string, role types.Role) error
	SetUserApproval(ctx context.Context, id string, approved bool) error
	SetUserBlocked(ctx context.Context, id string, blocked bool) error

	GetMaintenance(ctx context.Context) (*types.MaintenanceState, error)
	SetMaintenance(ctx context.Context, enabled bool, message string) error
}
