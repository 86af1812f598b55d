// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/creatorstack/access-service/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	SetUserRole(ctx context.Context, id string, role types.Role) error
	SetUserApproval(ctx context.Context, id string, approved bool) error
	SetUserBlocked(ctx context.Context, id string, blocked bool) error
	SetUserTenant(ctx context.Context, id string, tenantID *string) error

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByInviteCode(ctx context.Context, code string) (*types.Tenant, error)
	GetTenantByOwnerID(ctx context.Context, ownerID string) (*types.Tenant, error)
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	SetInviteCode(ctx context.Context, tenantID, code string) error
	SetTenantPlan(ctx context.Context, tenantID string, plan types.Plan) error
	DeleteTenant(ctx context.Context, id string) error

	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	CountApprovedMembers(ctx context.Context, tenantID string) (int, error)
	SetMembershipStatus(ctx context.Context, id string, status types.MembershipStatus) error
	DeleteMembership(ctx context.Context, id string) error

	AppendMembershipEvent(ctx context.Context, e *types.MembershipEvent) error
	ListMembershipEventsByTenantID(ctx context.Context, tenantID string) ([]*types.MembershipEvent, error)

	GetMaintenance(ctx context.Context) (*types.MaintenanceState, error)
	SetMaintenance(ctx context.Context, enabled bool, message string) error
}
