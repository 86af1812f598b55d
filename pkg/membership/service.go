// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package membership implements the tenant membership lifecycle: join
// requests, approval against the plan's seat limit, removal, leaving, and
// tenant creation. All writes to tenant membership state go through here.
package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/storage"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
	"github.com/creatorstack/access-service/pkg/plans"
)

type Service struct {
	db       DBClientInterface
	storage  StorageInterface
	invites  InvitesInterface
	recorder RecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	db DBClientInterface,
	storage StorageInterface,
	invites InvitesInterface,
	recorder RecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		db:       db,
		storage:  storage,
		invites:  invites,
		recorder: recorder,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateTenant creates a tenant on the free plan with a fresh invite code and
// points the creator's tenant reference at it. Ownership is implicit; the
// owner gets no membership row.
func (s *Service) CreateTenant(ctx context.Context, actor *types.User, name string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.CreateTenant")
	defer span.End()

	if !actor.Role.OwnerEligible() {
		return nil, ErrRoleNotEligible
	}

	if actor.TenantID != nil {
		return nil, ErrAlreadyOwnsOrMember
	}

	if _, err := s.storage.GetTenantByOwnerID(ctx, actor.ID); err == nil {
		return nil, ErrAlreadyOwnsOrMember
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check ownership: %w", err)
	}

	if _, err := s.storage.GetMembershipByUserID(ctx, actor.ID); err == nil {
		return nil, ErrAlreadyOwnsOrMember
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	code, err := s.invites.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	var created *types.Tenant
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		t := &types.Tenant{
			Name:       name,
			OwnerID:    actor.ID,
			InviteCode: code,
			Plan:       types.PlanFree,
		}

		created, err = s.storage.CreateTenant(ctx, t)
		if err != nil {
			if storage.IsDuplicateKeyError(err) {
				// owner_id is unique, so a concurrent create loses here.
				return ErrAlreadyOwnsOrMember
			}
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		return s.storage.SetUserTenant(ctx, actor.ID, &created.ID)
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, created.ID, actor.ID, actor.ID, types.EventTenantCreated)
	return created, nil
}

// RequestJoin resolves the invite code and creates a pending membership. The
// seat limit is deliberately not consulted here; pending requests wait for
// the owner's review regardless of occupancy.
func (s *Service) RequestJoin(ctx context.Context, user *types.User, code string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RequestJoin")
	defer span.End()

	tenant, err := s.invites.Validate(ctx, code)
	if err != nil {
		return nil, err
	}

	if user.TenantID != nil {
		return nil, ErrAlreadyMember
	}

	if _, err := s.storage.GetMembershipByUserID(ctx, user.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	// Owning a tenant counts as membership, there is just no row for it.
	if _, err := s.storage.GetTenantByOwnerID(ctx, user.ID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check ownership: %w", err)
	}

	created, err := s.storage.CreateMembership(ctx, &types.Membership{
		TenantID: tenant.ID,
		UserID:   user.ID,
		Role:     user.Role,
		Status:   types.MembershipPending,
	})
	if err != nil {
		if storage.IsDuplicateKeyError(err) {
			// Concurrent duplicate request; the unique index on user_id
			// guarantees at most one live row.
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	s.record(ctx, tenant.ID, user.ID, user.ID, types.EventJoinRequested)
	return created, nil
}

// Approve flips a pending membership to approved and sets the member's
// tenant reference. The approved count is re-read inside the transaction: a
// count taken earlier in the request can race a concurrent approve past the
// seat limit. On ErrSeatLimitReached the request stays pending.
func (s *Service) Approve(ctx context.Context, actorID, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Approve")
	defer span.End()

	tenant, err := s.requireOwner(ctx, tenantID, actorID)
	if err != nil {
		return err
	}

	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if m.Status == types.MembershipApproved {
		// Retry of an already-applied approve.
		return nil
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		count, err := s.storage.CountApprovedMembers(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("failed to count approved members: %w", err)
		}

		if !plans.CanApprove(tenant.Plan, count) {
			return ErrSeatLimitReached
		}

		if err := s.storage.SetMembershipStatus(ctx, m.ID, types.MembershipApproved); err != nil {
			return fmt.Errorf("failed to approve membership: %w", err)
		}

		return s.storage.SetUserTenant(ctx, userID, &tenantID)
	})
	if err != nil {
		return err
	}

	s.record(ctx, tenantID, userID, actorID, types.EventApproved)
	return nil
}

// Remove deletes a membership, pending (reject) or approved (remove), and
// clears the member's tenant reference if it pointed at this tenant. The row
// is gone afterwards; the audit log keeps the history.
func (s *Service) Remove(ctx context.Context, actorID, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Remove")
	defer span.End()

	if _, err := s.requireOwner(ctx, tenantID, actorID); err != nil {
		return err
	}

	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteMembership(ctx, m.ID); err != nil {
			return fmt.Errorf("failed to delete membership: %w", err)
		}
		return s.clearTenantPointer(ctx, userID, tenantID)
	})
	if err != nil {
		return err
	}

	action := types.EventRemoved
	if m.Status == types.MembershipPending {
		action = types.EventRejected
	}
	s.record(ctx, tenantID, userID, actorID, action)
	return nil
}

// Leave is the self-service counterpart of Remove, acting on the caller's
// own membership.
func (s *Service) Leave(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Leave")
	defer span.End()

	m, err := s.storage.GetMembershipByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteMembership(ctx, m.ID); err != nil {
			return fmt.Errorf("failed to delete membership: %w", err)
		}
		return s.storage.SetUserTenant(ctx, user.ID, nil)
	})
	if err != nil {
		return err
	}

	s.record(ctx, m.TenantID, user.ID, user.ID, types.EventLeft)
	return nil
}

// MyTenant returns the tenant the user owns, or the one their membership
// points at.
func (s *Service) MyTenant(ctx context.Context, user *types.User) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.MyTenant")
	defer span.End()

	tenant, err := s.storage.GetTenantByOwnerID(ctx, user.ID)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get owned tenant: %w", err)
	}

	if user.TenantID == nil {
		return nil, ErrTenantNotFound
	}

	tenant, err = s.storage.GetTenantByID(ctx, *user.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return tenant, nil
}

func (s *Service) ListMembers(ctx context.Context, actorID, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListMembers")
	defer span.End()

	if _, err := s.requireOwner(ctx, tenantID, actorID); err != nil {
		return nil, err
	}

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

func (s *Service) ListEvents(ctx context.Context, actorID, tenantID string) ([]*types.MembershipEvent, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListEvents")
	defer span.End()

	if _, err := s.requireOwner(ctx, tenantID, actorID); err != nil {
		return nil, err
	}

	return s.recorder.ListByTenant(ctx, tenantID)
}

// RotateInviteCode replaces the tenant's code; all previously distributed
// codes stop working. Existing memberships are untouched.
func (s *Service) RotateInviteCode(ctx context.Context, actorID, tenantID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RotateInviteCode")
	defer span.End()

	if _, err := s.requireOwner(ctx, tenantID, actorID); err != nil {
		return "", err
	}

	code, err := s.invites.Rotate(ctx, tenantID)
	if err != nil {
		return "", err
	}

	s.record(ctx, tenantID, actorID, actorID, types.EventCodeRotated)
	return code, nil
}

// ChangePlan updates the tenant's plan. A downgrade below current occupancy
// evicts nobody; the tenant simply cannot approve new members until attrition
// brings it back under the limit.
func (s *Service) ChangePlan(ctx context.Context, actorID, tenantID string, plan types.Plan) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ChangePlan")
	defer span.End()

	if !plan.Valid() {
		return nil, ErrInvalidPlan
	}

	tenant, err := s.requireOwner(ctx, tenantID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SetTenantPlan(ctx, tenantID, plan); err != nil {
		return nil, fmt.Errorf("failed to set plan: %w", err)
	}

	s.record(ctx, tenantID, actorID, actorID, types.EventPlanChanged)

	tenant.Plan = plan
	return tenant, nil
}

// clearTenantPointer unsets the user's tenant reference, but only if it
// still points at this tenant; a pending member never had it set.
func (s *Service) clearTenantPointer(ctx context.Context, userID, tenantID string) error {
	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.TenantID == nil || *user.TenantID != tenantID {
		return nil
	}

	return s.storage.SetUserTenant(ctx, userID, nil)
}

func (s *Service) requireOwner(ctx context.Context, tenantID, actorID string) (*types.Tenant, error) {
	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.OwnerID != actorID {
		s.logger.Security().AuthzFailure(actorID, fmt.Sprintf("owner of tenant %s", tenantID))
		return nil, ErrNotOwner
	}

	return tenant, nil
}

// record writes the audit event for a transition that already committed.
// Losing the event must not roll back the transition, so failures are only
// logged.
func (s *Service) record(ctx context.Context, tenantID, userID, actorID, action string) {
	if err := s.recorder.Record(ctx, tenantID, userID, actorID, action); err != nil {
		s.logger.Warnf("failed to record %s event for tenant %s: %v", action, tenantID, err)
	}
}
