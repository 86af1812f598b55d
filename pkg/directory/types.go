// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"time"

	"github.com/creatorstack/access-service/internal/types"
)

// registrationPayload is the identity-provider webhook body for a completed
// registration flow.
type registrationPayload struct {
	ID     string `json:"id"`
	Traits struct {
		Email     string `json:"email"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	} `json:"traits"`
}

type selectRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=manager model influencer cutter"`
}

type approvalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type blockRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

type maintenanceRequest struct {
	Enabled *bool  `json:"enabled" validate:"required"`
	Message string `json:"message" validate:"max=500"`
}

type maintenanceResponse struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

type userResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name,omitempty"`
	AvatarURL   string  `json:"avatar_url,omitempty"`
	Approved    bool    `json:"approved"`
	Blocked     bool    `json:"blocked"`
	Role        string  `json:"role"`
	TenantID    *string `json:"tenant_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func newUserResponse(u *types.User) *userResponse {
	return &userResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Approved:    u.Approved,
		Blocked:     u.Blocked,
		Role:        string(u.Role),
		TenantID:    u.TenantID,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
