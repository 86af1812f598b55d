// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the closed set of functional roles a user can hold. It is chosen
// once at signup and is immutable by the user afterwards.
type Role string

const (
	RoleUnset      Role = ""
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleModel      Role = "model"
	RoleInfluencer Role = "influencer"
	RoleCutter     Role = "cutter"
)

// Valid reports whether r is one of the assignable roles. RoleAdmin is not
// user-assignable and RoleUnset is the pre-signup state.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleModel, RoleInfluencer, RoleCutter:
		return true
	}
	return false
}

// OwnerEligible reports whether a user with this role may create a tenant.
func (r Role) OwnerEligible() bool {
	return r == RoleManager || r == RoleAdmin
}

// Plan is a tenant's subscription tier. Plan changes are simulated; the only
// operational consequence of a plan is its seat limit.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanBusiness:
		return true
	}
	return false
}

// MembershipStatus is the live state of a membership row. Removal deletes
// the row; history lives in the membership_events log.
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
)

type User struct {
	// ID is the identity provider's stable identifier.
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	AvatarURL   string    `db:"avatar_url"`
	Approved    bool      `db:"approved"`
	Blocked     bool      `db:"blocked"`
	Role        Role      `db:"role"`
	TenantID    *string   `db:"tenant_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type Tenant struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	OwnerID    string    `db:"owner_id"`
	InviteCode string    `db:"invite_code"`
	Plan       Plan      `db:"plan"`
	CreatedAt  time.Time `db:"created_at"`
}

type Membership struct {
	ID       string           `db:"id"`
	TenantID string           `db:"tenant_id"`
	UserID   string           `db:"user_id"`
	Role     Role             `db:"role"`
	Status   MembershipStatus `db:"status"`
	JoinedAt time.Time        `db:"joined_at"`
}

// MembershipEvent is an append-only audit record of a lifecycle transition.
// The live membership row is deleted on removal, so this log is the only
// durable history of past decisions.
type MembershipEvent struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	UserID    string    `db:"user_id"`
	ActorID   string    `db:"actor_id"`
	Action    string    `db:"action"`
	CreatedAt time.Time `db:"created_at"`
}

// Membership event actions.
const (
	EventJoinRequested = "join_requested"
	EventApproved      = "approved"
	EventRejected      = "rejected"
	EventRemoved       = "removed"
	EventLeft          = "left"
	EventTenantCreated = "tenant_created"
	EventCodeRotated   = "code_rotated"
	EventPlanChanged   = "plan_changed"
)

// MaintenanceState is the singleton global gate switch.
type MaintenanceState struct {
	Enabled bool   `db:"enabled"`
	Message string `db:"message"`
}
