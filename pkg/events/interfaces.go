// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"

	"github.com/creatorstack/access-service/internal/types"
)

// PublisherInterface fans a recorded event out to live subscribers. Publish
// failures are a presentation concern and must never fail the transition that
// produced the event.
type PublisherInterface interface {
	Publish(ctx context.Context, e *types.MembershipEvent) error
	Close() error
}

// StorageInterface is the subset of the storage layer the recorder needs.
type StorageInterface interface {
	AppendMembershipEvent(ctx context.Context, e *types.MembershipEvent) error
	ListMembershipEventsByTenantID(ctx context.Context, tenantID string) ([]*types.MembershipEvent, error)
}
