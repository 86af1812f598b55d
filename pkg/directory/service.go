// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package directory manages user records: provisioning at first
// authentication, the one-time role selection, and the admin controls over
// approval, blocking, and maintenance mode.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/storage"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidRole    = errors.New("role is not assignable")
	ErrRoleAlreadySet = errors.New("role was already chosen")
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ProvisionUser creates the stored record at first authentication: not
// approved, no role, no tenant. The identity provider may replay the
// webhook, so an existing record is returned as-is.
func (s *Service) ProvisionUser(ctx context.Context, identityID, email, displayName, avatarURL string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.ProvisionUser")
	defer span.End()

	if identityID == "" || email == "" {
		return nil, fmt.Errorf("identity ID and email are required")
	}

	u := &types.User{
		ID:          identityID,
		Email:       email,
		DisplayName: displayName,
		AvatarURL:   avatarURL,
		Role:        types.RoleUnset,
	}

	created, err := s.storage.CreateUser(ctx, u)
	if err != nil {
		if storage.IsDuplicateKeyError(err) {
			s.logger.Debugf("registration replay for identity %s", identityID)
			return s.storage.GetUserByID(ctx, identityID)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infof("provisioned user %s", identityID)
	return created, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.Profile")
	defer span.End()

	u, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// SelectRole sets the user's functional role. The choice is made once at
// signup; afterwards only the stored value counts and the user cannot
// change it.
func (s *Service) SelectRole(ctx context.Context, userID string, role types.Role) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.SelectRole")
	defer span.End()

	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.Role != types.RoleUnset {
		return nil, ErrRoleAlreadySet
	}

	if err := s.storage.SetUserRole(ctx, userID, role); err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}

	u.Role = role
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.ListUsers")
	defer span.End()

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *Service) SetApproval(ctx context.Context, actorID, userID string, approved bool) error {
	ctx, span := s.tracer.Start(ctx, "directory.Service.SetApproval")
	defer span.End()

	if err := s.storage.SetUserApproval(ctx, userID, approved); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to set approval: %w", err)
	}

	s.logger.Infof("admin %s set approval of user %s to %t", actorID, userID, approved)
	return nil
}

func (s *Service) SetBlocked(ctx context.Context, actorID, userID string, blocked bool) error {
	ctx, span := s.tracer.Start(ctx, "directory.Service.SetBlocked")
	defer span.End()

	if err := s.storage.SetUserBlocked(ctx, userID, blocked); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to set blocked: %w", err)
	}

	if blocked {
		s.logger.Security().AccessBlocked(userID, "blocked by admin")
	}
	return nil
}

func (s *Service) Maintenance(ctx context.Context) (*types.MaintenanceState, error) {
	ctx, span := s.tracer.Start(ctx, "directory.Service.Maintenance")
	defer span.End()

	return s.storage.GetMaintenance(ctx)
}

func (s *Service) SetMaintenance(ctx context.Context, actorID string, enabled bool, message string) error {
	ctx, span := s.tracer.Start(ctx, "directory.Service.SetMaintenance")
	defer span.End()

	if err := s.storage.SetMaintenance(ctx, enabled, message); err != nil {
		return fmt.Errorf("failed to set maintenance: %w", err)
	}

	s.logger.Warnf("admin %s set maintenance mode to %t", actorID, enabled)
	return nil
}
