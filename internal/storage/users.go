// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/creatorstack/access-service/internal/types"
)

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var created types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "display_name", "avatar_url", "approved", "blocked", "role").
		Values(u.ID, u.Email, u.DisplayName, u.AvatarURL, u.Approved, u.Blocked, u.Role).
		Suffix("RETURNING id, email, display_name, avatar_url, approved, blocked, role, tenant_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Email, &created.DisplayName, &created.AvatarURL,
			&created.Approved, &created.Blocked, &created.Role, &created.TenantID, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "display_name", "avatar_url", "approved", "blocked", "role", "tenant_id", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.DisplayName, &u.AvatarURL,
			&u.Approved, &u.Blocked, &u.Role, &u.TenantID, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "email", "display_name", "avatar_url", "approved", "blocked", "role", "tenant_id", "created_at").
		From("users").
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Email, &u.DisplayName, &u.AvatarURL,
			&u.Approved, &u.Blocked, &u.Role, &u.TenantID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) SetUserRole(ctx context.Context, id string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserRole")
	defer span.End()

	return s.updateUser(ctx, id, sq.Eq{"role": role})
}

func (s *Storage) SetUserApproval(ctx context.Context, id string, approved bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserApproval")
	defer span.End()

	return s.updateUser(ctx, id, sq.Eq{"approved": approved})
}

func (s *Storage) SetUserBlocked(ctx context.Context, id string, blocked bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserBlocked")
	defer span.End()

	return s.updateUser(ctx, id, sq.Eq{"blocked": blocked})
}

func (s *Storage) SetUserTenant(ctx context.Context, id string, tenantID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserTenant")
	defer span.End()

	return s.updateUser(ctx, id, sq.Eq{"tenant_id": tenantID})
}

func (s *Storage) updateUser(ctx context.Context, id string, values sq.Eq) error {
	update := s.db.Statement(ctx).Update("users")
	for col, val := range values {
		update = update.Set(col, val)
	}

	res, err := update.
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return requireRowsAffected(res, "user")
}

func requireRowsAffected(res sql.Result, resource string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", resource, ErrNotFound)
	}
	return nil
}
