// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/storage"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
	"github.com/creatorstack/access-service/pkg/authentication"
	"github.com/creatorstack/access-service/pkg/roles"
)

type Middleware struct {
	storage  StorageInterface
	identity IdentityInterface
	resolver *roles.Resolver

	signInPath  string
	landingPath string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	storage StorageInterface,
	identity IdentityInterface,
	resolver *roles.Resolver,
	signInPath string,
	landingPath string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		storage:     storage,
		identity:    identity,
		resolver:    resolver,
		signInPath:  signInPath,
		landingPath: landingPath,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Protect gates a route. With no roles given, any authenticated, approved
// account passes; with roles, the effective role must be in the list (admin
// always passes). Downstream handlers read the resolved caller via
// ActorFromContext.
func (m *Middleware) Protect(allowedRoles ...types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "gate.Middleware.Protect")
			defer span.End()

			userID, authenticated := authentication.GetUserID(ctx)

			var user *types.User
			var email string
			if authenticated {
				stored, err := m.storage.GetUserByID(ctx, userID)
				switch {
				case err == nil:
					user = stored
					email = stored.Email
				case errors.Is(err, storage.ErrNotFound):
					// No record yet. Resolve the email from the identity
					// provider so the super-admin override can still match.
					traits, terr := m.identity.GetTraits(ctx, userID)
					if terr != nil {
						m.logger.Debugf("failed to resolve traits for %s: %v", userID, terr)
					} else {
						email = traits.Email
					}
				default:
					m.storageFailureResponse(w, err)
					return
				}
			}

			superAdmin := m.resolver.IsSuperAdmin(email)
			role := m.resolver.EffectiveRole(user)
			if superAdmin {
				role = types.RoleAdmin
			}

			maintenance := types.MaintenanceState{}
			if authenticated && !superAdmin {
				state, err := m.storage.GetMaintenance(ctx)
				if err != nil {
					m.storageFailureResponse(w, err)
					return
				}
				maintenance = *state
			}

			outcome := Decide(Input{
				Authenticated: authenticated,
				User:          user,
				Role:          role,
				SuperAdmin:    superAdmin,
				Maintenance:   maintenance,
				AllowedRoles:  allowedRoles,
			})

			switch outcome.Verdict {
			case VerdictAllow:
				ctx = WithActor(ctx, &Actor{
					UserID:     userID,
					User:       user,
					Role:       role,
					SuperAdmin: superAdmin,
				})
				next.ServeHTTP(w, r.WithContext(ctx))
			case VerdictSignIn:
				m.blockResponse(w, http.StatusUnauthorized, outcome.Verdict, "authentication required", map[string]string{"sign_in": m.signInPath})
			case VerdictMaintenance:
				message := outcome.Message
				if message == "" {
					message = "the service is down for maintenance"
				}
				m.blockResponse(w, http.StatusServiceUnavailable, outcome.Verdict, message, nil)
			case VerdictAwaitingApproval:
				m.logger.Security().AccessBlocked(userID, outcome.Verdict.String())
				m.blockResponse(w, http.StatusForbidden, outcome.Verdict, "your account is awaiting approval", nil)
			case VerdictSuspended:
				m.logger.Security().AccessBlocked(userID, outcome.Verdict.String())
				m.blockResponse(w, http.StatusForbidden, outcome.Verdict, "your account has been suspended", nil)
			case VerdictLandingRedirect:
				m.logger.Security().AuthzFailure(userID, r.URL.Path)
				http.Redirect(w, r, m.landingPath, http.StatusSeeOther)
			}
		})
	}
}

func (m *Middleware) blockResponse(w http.ResponseWriter, status int, verdict Verdict, message string, extra map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := map[string]interface{}{
		"status":  status,
		"code":    verdict.String(),
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		m.logger.Errorf("failed to encode gate response: %v", err)
	}
}

// storageFailureResponse surfaces store trouble as a retryable error. It must
// never be dressed up as one of the block screens.
func (m *Middleware) storageFailureResponse(w http.ResponseWriter, err error) {
	m.logger.Errorf("gate storage lookup failed: %v", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if encErr := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusInternalServerError,
		"message": "temporary failure, try again",
	}); encErr != nil {
		m.logger.Errorf("failed to encode gate response: %v", encErr)
	}
}
