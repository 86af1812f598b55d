// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invites issues and validates tenant join codes, the single secret
// a non-owner needs to request membership.
package invites

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/storage"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
)

// ErrInvalidCode is returned when a code does not resolve to a tenant.
var ErrInvalidCode = errors.New("invalid invite code")

// Codes are fixed-width and drawn from an alphabet without 0/O and 1/I,
// because humans type them. Both values are part of the code-entry contract;
// changing either breaks distributed codes.
const (
	CodeLength   = 8
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// maxGenerateAttempts bounds collision retries. With 32^8 possible codes a
// second attempt is already rare; exhausting this means the lookup is broken.
const maxGenerateAttempts = 10

type ManagerInterface interface {
	Generate(ctx context.Context) (string, error)
	Validate(ctx context.Context, raw string) (*types.Tenant, error)
	Rotate(ctx context.Context, tenantID string) (string, error)
}

var _ ManagerInterface = (*Manager)(nil)

type Manager struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewManager(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Manager {
	return &Manager{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Normalize maps user input onto the canonical code form: surrounding
// whitespace trimmed, letters uppercased. Codes are case-insensitive on
// entry by contract.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Generate draws codes until one does not collide with an active tenant's
// code. Uniqueness is checked by lookup here; the storage layer's unique
// index is the backstop.
func (m *Manager) Generate(ctx context.Context) (string, error) {
	ctx, span := m.tracer.Start(ctx, "invites.Manager.Generate")
	defer span.End()

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := drawCode()
		if err != nil {
			return "", err
		}

		exists, err := m.storage.InviteCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}

		m.logger.Debugf("invite code collision on attempt %d", attempt+1)
	}

	return "", fmt.Errorf("failed to generate a unique invite code after %d attempts", maxGenerateAttempts)
}

// Validate resolves a raw, user-typed code to its tenant.
func (m *Manager) Validate(ctx context.Context, raw string) (*types.Tenant, error) {
	ctx, span := m.tracer.Start(ctx, "invites.Manager.Validate")
	defer span.End()

	code := Normalize(raw)
	if len(code) != CodeLength {
		return nil, ErrInvalidCode
	}

	tenant, err := m.storage.GetTenantByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}

	return tenant, nil
}

// Rotate replaces a tenant's code. Every previously distributed code stops
// resolving immediately; existing memberships are untouched.
func (m *Manager) Rotate(ctx context.Context, tenantID string) (string, error) {
	ctx, span := m.tracer.Start(ctx, "invites.Manager.Rotate")
	defer span.End()

	code, err := m.Generate(ctx)
	if err != nil {
		return "", err
	}

	if err := m.storage.SetInviteCode(ctx, tenantID, code); err != nil {
		return "", fmt.Errorf("failed to store rotated code: %w", err)
	}

	return code, nil
}

func drawCode() (string, error) {
	buf := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to draw random code: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}

	return string(buf), nil
}
