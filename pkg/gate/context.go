// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"

	"github.com/creatorstack/access-service/internal/types"
)

type contextKey string

const actorContextKey contextKey = "gate.actor"

// Actor is the resolved caller a view runs as: the stored record (nil for a
// super-admin without one), the effective role, and the override flag.
type Actor struct {
	UserID     string
	User       *types.User
	Role       types.Role
	SuperAdmin bool
}

func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// ActorFromContext returns the actor the gate attached, or false when the
// request did not pass through the gate.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(*Actor)
	return actor, ok && actor != nil
}
