// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"fmt"

	ory "github.com/ory/client-go"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/tracing"
)

// Traits is the subset of identity attributes this service consumes. The
// identity provider owns credentials; we never see them.
type Traits struct {
	Email       string
	DisplayName string
	AvatarURL   string
}

type ClientInterface interface {
	GetTraits(ctx context.Context, identityID string) (*Traits, error)
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetTraits fetches the identity record and extracts the traits the service
// needs. Missing optional traits come back as empty strings.
func (c *Client) GetTraits(ctx context.Context, identityID string) (*Traits, error) {
	ctx, span := c.tracer.Start(ctx, "identity.GetTraits")
	defer span.End()

	identity, _, err := c.client.IdentityAPI.GetIdentity(ctx, identityID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	t := new(Traits)
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			t.Email = e
		}
		if n, ok := traits["name"].(string); ok {
			t.DisplayName = n
		}
		if a, ok := traits["avatar_url"].(string); ok {
			t.AvatarURL = a
		}
	}

	if t.Email == "" {
		return nil, fmt.Errorf("identity %s has no email trait", identityID)
	}

	return t, nil
}
