// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
)

// Channel layout: one channel per tenant for owner/member views, one per
// affected user so a requester sees their own approval without polling.
func tenantChannel(tenantID string) string {
	return fmt.Sprintf("membership:tenant:%s", tenantID)
}

func userChannel(userID string) string {
	return fmt.Sprintf("membership:user:%s", userID)
}

// RedisPublisher pushes membership events over redis pub/sub.
type RedisPublisher struct {
	client *redis.Client

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

var _ PublisherInterface = (*RedisPublisher)(nil)

func NewRedisPublisher(addr, password string, db int, tracer tracing.TracingInterface, logger logging.LoggerInterface) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisPublisher{
		client: client,
		tracer: tracer,
		logger: logger,
	}
}

// Ping verifies the connection so startup can report redis availability.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *RedisPublisher) Publish(ctx context.Context, e *types.MembershipEvent) error {
	ctx, span := p.tracer.Start(ctx, "events.RedisPublisher.Publish")
	defer span.End()

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode membership event: %w", err)
	}

	if err := p.client.Publish(ctx, tenantChannel(e.TenantID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to tenant channel: %w", err)
	}

	if e.UserID != "" {
		if err := p.client.Publish(ctx, userChannel(e.UserID), payload).Err(); err != nil {
			return fmt.Errorf("failed to publish to user channel: %w", err)
		}
	}

	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// NoopPublisher drops events. Used when no redis address is configured;
// consumers fall back to polling.
type NoopPublisher struct{}

var _ PublisherInterface = (*NoopPublisher)(nil)

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(ctx context.Context, e *types.MembershipEvent) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
