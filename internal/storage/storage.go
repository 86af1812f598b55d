// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/creatorstack/access-service/internal/db"
	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var newTenant types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "owner_id", "invite_code", "plan").
		Values(id.String(), t.Name, t.OwnerID, t.InviteCode, t.Plan).
		Suffix("RETURNING id, name, owner_id, invite_code, plan, created_at").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.OwnerID, &newTenant.InviteCode, &newTenant.Plan, &newTenant.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantByInviteCode(ctx context.Context, code string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByInviteCode")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"invite_code": code})
}

func (s *Storage) GetTenantByOwnerID(ctx context.Context, ownerID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByOwnerID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"owner_id": ownerID})
}

func (s *Storage) getTenant(ctx context.Context, pred sq.Eq) (*types.Tenant, error) {
	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "owner_id", "invite_code", "plan", "created_at").
		From("tenants").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.OwnerID, &t.InviteCode, &t.Plan, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InviteCodeExists")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("tenants").
		Where(sq.Eq{"invite_code": code}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check invite code: %w", err)
	}

	return count > 0, nil
}

func (s *Storage) SetInviteCode(ctx context.Context, tenantID, code string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetInviteCode")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("invite_code", code).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to set invite code: %w", err)
	}

	return requireRowsAffected(res, "tenant")
}

func (s *Storage) SetTenantPlan(ctx context.Context, tenantID string, plan types.Plan) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantPlan")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("plan", plan).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant plan: %w", err)
	}

	return requireRowsAffected(res, "tenant")
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var created types.Membership
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "user_id", "role", "status").
		Values(id.String(), m.TenantID, m.UserID, m.Role, m.Status).
		Suffix("RETURNING id, tenant_id, user_id, role, status, joined_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.UserID, &created.Role, &created.Status, &created.JoinedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"tenant_id": tenantID, "user_id": userID})
}

func (s *Storage) GetMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByUserID")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"user_id": userID})
}

func (s *Storage) getMembership(ctx context.Context, pred sq.Eq) (*types.Membership, error) {
	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role", "status", "joined_at").
		From("memberships").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.UserID, &m.Role, &m.Status, &m.JoinedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role", "status", "joined_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("joined_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.TenantID, &m.UserID, &m.Role, &m.Status, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// CountApprovedMembers counts approved memberships for a tenant. Callers
// enforcing the seat limit must run this inside the same transaction as the
// status flip, otherwise two concurrent approvals can both pass the check.
func (s *Storage) CountApprovedMembers(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountApprovedMembers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID, "status": types.MembershipApproved}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count approved members: %w", err)
	}

	return count, nil
}

func (s *Storage) SetMembershipStatus(ctx context.Context, id string, status types.MembershipStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMembershipStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update membership status: %w", err)
	}

	return requireRowsAffected(res, "membership")
}

func (s *Storage) DeleteMembership(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	return requireRowsAffected(res, "membership")
}
