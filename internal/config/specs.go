// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	OIDCIssuer  string `envconfig:"oidc_issuer"`
	OIDCJWKSURL string `envconfig:"oidc_jwks_url"`

	// TrustProxyHeader accepts the identity header set by an identity-aware
	// proxy in place of a bearer token. Only safe when the service is not
	// reachable except through that proxy.
	TrustProxyHeader bool `envconfig:"trust_proxy_header" default:"false"`

	// SuperAdminEmail is the single identity that bypasses approval, block,
	// maintenance and role checks. Injected here so the override is an
	// auditable policy rule rather than a constant in code.
	SuperAdminEmail string `envconfig:"super_admin_email" required:"true"`

	// DefaultLandingPath is where role-gated views silently redirect callers
	// whose role is not on the allow-list.
	DefaultLandingPath string `envconfig:"default_landing_path" default:"/dashboard"`
	SignInPath         string `envconfig:"sign_in_path" default:"/signin"`

	RedisAddr     string `envconfig:"redis_addr"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`
}
