// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"

	"github.com/creatorstack/access-service/internal/identity"
	"github.com/creatorstack/access-service/internal/types"
)

// StorageInterface is the subset of the storage layer the gate reads.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetMaintenance(ctx context.Context) (*types.MaintenanceState, error)
}

// IdentityInterface resolves traits for identities without a stored user
// record, so the super-admin override can match before first provisioning.
type IdentityInterface interface {
	GetTraits(ctx context.Context, identityID string) (*identity.Traits, error)
}
