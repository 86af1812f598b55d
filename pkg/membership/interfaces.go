// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/creatorstack/access-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, actor *types.User, name string) (*types.Tenant, error)
	RequestJoin(ctx context.Context, user *types.User, code string) (*types.Membership, error)
	Approve(ctx context.Context, actorID, tenantID, userID string) error
	Remove(ctx context.Context, actorID, tenantID, userID string) error
	Leave(ctx context.Context, user *types.User) error
	MyTenant(ctx context.Context, user *types.User) (*types.Tenant, error)
	ListMembers(ctx context.Context, actorID, tenantID string) ([]*types.Membership, error)
	ListEvents(ctx context.Context, actorID, tenantID string) ([]*types.MembershipEvent, error)
	RotateInviteCode(ctx context.Context, actorID, tenantID string) (string, error)
	ChangePlan(ctx context.Context, actorID, tenantID string, plan types.Plan) (*types.Tenant, error)
}

// StorageInterface is the subset of the storage layer the lifecycle needs.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	SetUserTenant(ctx context.Context, id string, tenantID *string) error

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByOwnerID(ctx context.Context, ownerID string) (*types.Tenant, error)
	SetTenantPlan(ctx context.Context, tenantID string, plan types.Plan) error

	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	GetMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	CountApprovedMembers(ctx context.Context, tenantID string) (int, error)
	SetMembershipStatus(ctx context.Context, id string, status types.MembershipStatus) error
	DeleteMembership(ctx context.Context, id string) error
}

// InvitesInterface is the invite code manager as the lifecycle consumes it.
type InvitesInterface interface {
	Generate(ctx context.Context) (string, error)
	Validate(ctx context.Context, raw string) (*types.Tenant, error)
	Rotate(ctx context.Context, tenantID string) (string, error)
}

// RecorderInterface writes the audit trail for completed transitions.
type RecorderInterface interface {
	Record(ctx context.Context, tenantID, userID, actorID, action string) error
	ListByTenant(ctx context.Context, tenantID string) ([]*types.MembershipEvent, error)
}

// DBClientInterface provides the transaction boundary for multi-row
// transitions.
type DBClientInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
