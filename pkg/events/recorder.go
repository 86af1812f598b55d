// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package events keeps the append-only audit trail of membership transitions
// and fans events out to live subscribers. Remove and reject delete the
// membership row, so this log is the only durable history of past decisions.
package events

import (
	"context"
	"time"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
)

type RecorderInterface interface {
	Record(ctx context.Context, tenantID, userID, actorID, action string) error
	ListByTenant(ctx context.Context, tenantID string) ([]*types.MembershipEvent, error)
}

var _ RecorderInterface = (*Recorder)(nil)

type Recorder struct {
	storage   StorageInterface
	publisher PublisherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRecorder(
	storage StorageInterface,
	publisher PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Recorder {
	return &Recorder{
		storage:   storage,
		publisher: publisher,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Record appends the audit row and then publishes. The append error is
// returned; a publish error is only logged, since subscribers can always
// fall back to polling current state.
func (r *Recorder) Record(ctx context.Context, tenantID, userID, actorID, action string) error {
	ctx, span := r.tracer.Start(ctx, "events.Recorder.Record")
	defer span.End()

	e := &types.MembershipEvent{
		TenantID:  tenantID,
		UserID:    userID,
		ActorID:   actorID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.storage.AppendMembershipEvent(ctx, e); err != nil {
		return err
	}

	if err := r.publisher.Publish(ctx, e); err != nil {
		r.logger.Warnf("failed to publish membership event %s for tenant %s: %v", action, tenantID, err)
	}

	return nil
}

func (r *Recorder) ListByTenant(ctx context.Context, tenantID string) ([]*types.MembershipEvent, error) {
	ctx, span := r.tracer.Start(ctx, "events.Recorder.ListByTenant")
	defer span.End()

	return r.storage.ListMembershipEventsByTenantID(ctx, tenantID)
}
