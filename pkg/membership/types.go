// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"time"

	"github.com/creatorstack/access-service/internal/types"
)

type createTenantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type joinRequest struct {
	Code string `json:"code" validate:"required"`
}

type changePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free pro business"`
}

type tenantResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OwnerID    string `json:"owner_id"`
	InviteCode string `json:"invite_code,omitempty"`
	Plan       string `json:"plan"`
	CreatedAt  string `json:"created_at"`
}

type membershipResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	JoinedAt string `json:"joined_at"`
}

type eventResponse struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	UserID    string `json:"user_id"`
	ActorID   string `json:"actor_id"`
	Action    string `json:"action"`
	CreatedAt string `json:"created_at"`
}

type inviteCodeResponse struct {
	InviteCode string `json:"invite_code"`
}

// The invite code is only included for the owner; members see the rest.
func newTenantResponse(t *types.Tenant, includeCode bool) *tenantResponse {
	resp := &tenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		OwnerID:   t.OwnerID,
		Plan:      string(t.Plan),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if includeCode {
		resp.InviteCode = t.InviteCode
	}
	return resp
}

func newMembershipResponse(m *types.Membership) *membershipResponse {
	return &membershipResponse{
		ID:       m.ID,
		TenantID: m.TenantID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		Status:   string(m.Status),
		JoinedAt: m.JoinedAt.Format(time.RFC3339),
	}
}

func newEventResponse(e *types.MembershipEvent) *eventResponse {
	return &eventResponse{
		ID:        e.ID,
		TenantID:  e.TenantID,
		UserID:    e.UserID,
		ActorID:   e.ActorID,
		Action:    e.Action,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
