// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/creatorstack/access-service/internal/types"
)

// AppendMembershipEvent writes an audit record. Events are append-only;
// there is no update or delete path.
func (s *Storage) AppendMembershipEvent(ctx context.Context, e *types.MembershipEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.AppendMembershipEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate event ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("membership_events").
		Columns("id", "tenant_id", "user_id", "actor_id", "action").
		Values(id.String(), e.TenantID, e.UserID, e.ActorID, e.Action).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to append membership event: %w", err)
	}

	return nil
}

func (s *Storage) ListMembershipEventsByTenantID(ctx context.Context, tenantID string) ([]*types.MembershipEvent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipEventsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "actor_id", "action", "created_at").
		From("membership_events").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list membership events: %w", err)
	}
	defer rows.Close()

	var events []*types.MembershipEvent
	for rows.Next() {
		var e types.MembershipEvent
		if err := rows.Scan(&e.ID, &e.TenantID, &e.UserID, &e.ActorID, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership event: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

// GetMaintenance reads the singleton maintenance row. The row is seeded by
// migrations so a missing row is a storage failure, not a disabled state.
func (s *Storage) GetMaintenance(ctx context.Context) (*types.MaintenanceState, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMaintenance")
	defer span.End()

	var m types.MaintenanceState
	err := s.db.Statement(ctx).
		Select("enabled", "message").
		From("maintenance").
		Where(sq.Eq{"id": true}).
		QueryRowContext(ctx).
		Scan(&m.Enabled, &m.Message)

	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance state: %w", err)
	}

	return &m, nil
}

func (s *Storage) SetMaintenance(ctx context.Context, enabled bool, message string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMaintenance")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("maintenance").
		Set("enabled", enabled).
		Set("message", message).
		Where(sq.Eq{"id": true}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set maintenance state: %w", err)
	}

	return requireRowsAffected(res, "maintenance state")
}
