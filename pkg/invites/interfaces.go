// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"

	"github.com/creatorstack/access-service/internal/types"
)

// StorageInterface is the subset of the storage layer the code manager needs.
type StorageInterface interface {
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	GetTenantByInviteCode(ctx context.Context, code string) (*types.Tenant, error)
	SetInviteCode(ctx context.Context, tenantID, code string) error
}
