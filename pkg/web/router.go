// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/creatorstack/access-service/internal/identity"
	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/pkg/authentication"
	"github.com/creatorstack/access-service/pkg/directory"
	"github.com/creatorstack/access-service/pkg/membership"
	"github.com/creatorstack/access-service/pkg/metrics"
	"github.com/creatorstack/access-service/pkg/status"
)

func NewRouter(
	membershipAPI *membership.API,
	directoryAPI *directory.API,
	authMiddleware *authentication.Middleware,
	identityMiddleware *identity.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Identity-provider callbacks carry no bearer token.
	directoryAPI.RegisterWebhookEndpoints(router)

	router.Group(func(r chi.Router) {
		if identityMiddleware != nil {
			r.Use(identityMiddleware.HTTPMiddleware)
		}
		r.Use(authMiddleware.Authenticate())

		directoryAPI.RegisterEndpoints(r)
		membershipAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
