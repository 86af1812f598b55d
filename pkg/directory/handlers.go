// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
	"github.com/creatorstack/access-service/pkg/authentication"
	"github.com/creatorstack/access-service/pkg/gate"
)

type API struct {
	service  ServiceInterface
	gate     *gate.Middleware
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	gateMiddleware *gate.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		gate:     gateMiddleware,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterWebhookEndpoints mounts the identity-provider callbacks. These are
// called service-to-service and are not bearer-authenticated; deployment
// keeps them off the public ingress.
func (a *API) RegisterWebhookEndpoints(mux chi.Router) {
	mux.Post("/api/v0/webhooks/registration", a.registration)
}

// RegisterEndpoints mounts the authenticated surface. The /me routes run
// without the gate: the awaiting-approval and role-selection screens need
// profile data before the gate would let the account through.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Route("/api/v0/me", func(r chi.Router) {
		r.Get("/", a.me)
		r.Post("/role", a.selectRole)
	})

	mux.Route("/api/v0/admin", func(r chi.Router) {
		r.Use(a.gate.Protect(types.RoleAdmin))

		r.Get("/maintenance", a.getMaintenance)
		r.Put("/maintenance", a.setMaintenance)
		r.Get("/users", a.listUsers)
		r.Put("/users/{userID}/approval", a.setApproval)
		r.Put("/users/{userID}/block", a.setBlocked)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.registration")
	defer span.End()

	var payload registrationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	user, err := a.service.ProvisionUser(ctx, payload.ID, payload.Traits.Email, payload.Traits.Name, payload.Traits.AvatarURL)
	if err != nil {
		a.logger.Errorf("failed to provision user: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "internal", "failed to provision user")
		return
	}

	a.jsonResponse(w, http.StatusOK, newUserResponse(user))
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.me")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
		return
	}

	user, err := a.service.Profile(ctx, userID)
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, newUserResponse(user))
}

func (a *API) selectRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.selectRole")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
		return
	}

	var req selectRoleRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	user, err := a.service.SelectRole(ctx, userID, types.Role(req.Role))
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, newUserResponse(user))
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.listUsers")
	defer span.End()

	users, err := a.service.ListUsers(ctx)
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	resp := make([]*userResponse, len(users))
	for i, u := range users {
		resp[i] = newUserResponse(u)
	}
	a.jsonResponse(w, http.StatusOK, map[string]interface{}{"users": resp})
}

func (a *API) setApproval(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.setApproval")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.errorResponse(w, http.StatusInternalServerError, "internal", "temporary failure, try again")
		return
	}

	var req approvalRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	if err := a.service.SetApproval(ctx, actor.UserID, chi.URLParam(r, "userID"), *req.Approved); err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setBlocked(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.setBlocked")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.errorResponse(w, http.StatusInternalServerError, "internal", "temporary failure, try again")
		return
	}

	var req blockRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	if err := a.service.SetBlocked(ctx, actor.UserID, chi.URLParam(r, "userID"), *req.Blocked); err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) getMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.getMaintenance")
	defer span.End()

	state, err := a.service.Maintenance(ctx)
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, &maintenanceResponse{Enabled: state.Enabled, Message: state.Message})
}

func (a *API) setMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "directory.API.setMaintenance")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.errorResponse(w, http.StatusInternalServerError, "internal", "temporary failure, try again")
		return
	}

	var req maintenanceRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	if err := a.service.SetMaintenance(ctx, actor.UserID, *req.Enabled, req.Message); err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, &maintenanceResponse{Enabled: *req.Enabled, Message: req.Message})
}

func (a *API) decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return false
	}

	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "bad_request", err.Error())
		return false
	}

	return true
}

func (a *API) serviceErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		a.errorResponse(w, http.StatusNotFound, "user_not_found", "user not found")
	case errors.Is(err, ErrInvalidRole):
		a.errorResponse(w, http.StatusBadRequest, "invalid_role", "role is not assignable")
	case errors.Is(err, ErrRoleAlreadySet):
		a.errorResponse(w, http.StatusConflict, "role_already_set", "the role was already chosen and cannot be changed")
	default:
		a.logger.Errorf("directory operation failed: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "internal", "temporary failure, try again")
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, code, message string) {
	a.jsonResponse(w, status, map[string]interface{}{
		"status":  status,
		"code":    code,
		"message": message,
	})
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
