// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

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
	"github.com/creatorstack/access-service/pkg/gate"
	"github.com/creatorstack/access-service/pkg/invites"
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

// RegisterEndpoints mounts the tenant surface. The given router must already
// authenticate requests; the gate runs here.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Route("/api/v0/tenants", func(r chi.Router) {
		r.Use(a.gate.Protect())

		r.Post("/", a.createTenant)
		r.Get("/mine", a.myTenant)
		r.Post("/join", a.join)
		r.Post("/leave", a.leave)

		r.Route("/{tenantID}", func(r chi.Router) {
			r.Get("/members", a.listMembers)
			r.Post("/members/{userID}/approve", a.approveMember)
			r.Delete("/members/{userID}", a.removeMember)
			r.Post("/invite-code", a.rotateInviteCode)
			r.Put("/plan", a.changePlan)
			r.Get("/events", a.listEvents)
		})
	})
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.createTenant")
	defer span.End()

	actor, ok := a.storedActor(w, r)
	if !ok {
		return
	}

	var req createTenantRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	tenant, err := a.service.CreateTenant(ctx, actor, req.Name)
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, newTenantResponse(tenant, true))
}

func (a *API) myTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.myTenant")
	defer span.End()

	actor, ok := a.storedActor(w, r)
	if !ok {
		return
	}

	tenant, err := a.service.MyTenant(ctx, actor)
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, newTenantResponse(tenant, tenant.OwnerID == actor.ID))
}

func (a *API) join(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.join")
	defer span.End()

	actor, ok := a.storedActor(w, r)
	if !ok {
		return
	}

	var req joinRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	m, err := a.service.RequestJoin(ctx, actor, req.Code)
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, newMembershipResponse(m))
}

func (a *API) leave(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.leave")
	defer span.End()

	actor, ok := a.storedActor(w, r)
	if !ok {
		return
	}

	if err := a.service.Leave(ctx, actor); err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.listMembers")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.internalErrorResponse(w)
		return
	}

	members, err := a.service.ListMembers(ctx, actor.UserID, chi.URLParam(r, "tenantID"))
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	resp := make([]*membershipResponse, len(members))
	for i, m := range members {
		resp[i] = newMembershipResponse(m)
	}
	a.jsonResponse(w, http.StatusOK, map[string]interface{}{"members": resp})
}

func (a *API) approveMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.approveMember")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.internalErrorResponse(w)
		return
	}

	err := a.service.Approve(ctx, actor.UserID, chi.URLParam(r, "tenantID"), chi.URLParam(r, "userID"))
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.removeMember")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.internalErrorResponse(w)
		return
	}

	err := a.service.Remove(ctx, actor.UserID, chi.URLParam(r, "tenantID"), chi.URLParam(r, "userID"))
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) rotateInviteCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.rotateInviteCode")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.internalErrorResponse(w)
		return
	}

	code, err := a.service.RotateInviteCode(ctx, actor.UserID, chi.URLParam(r, "tenantID"))
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, &inviteCodeResponse{InviteCode: code})
}

func (a *API) changePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.changePlan")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.internalErrorResponse(w)
		return
	}

	var req changePlanRequest
	if !a.decodeRequest(w, r, &req) {
		return
	}

	tenant, err := a.service.ChangePlan(ctx, actor.UserID, chi.URLParam(r, "tenantID"), types.Plan(req.Plan))
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, newTenantResponse(tenant, true))
}

func (a *API) listEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.listEvents")
	defer span.End()

	actor, ok := gate.ActorFromContext(ctx)
	if !ok {
		a.internalErrorResponse(w)
		return
	}

	events, err := a.service.ListEvents(ctx, actor.UserID, chi.URLParam(r, "tenantID"))
	if err != nil {
		a.serviceErrorResponse(w, err)
		return
	}

	resp := make([]*eventResponse, len(events))
	for i, e := range events {
		resp[i] = newEventResponse(e)
	}
	a.jsonResponse(w, http.StatusOK, map[string]interface{}{"events": resp})
}

// storedActor returns the caller's stored user record. The super-admin can
// pass the gate without one, but the self-service operations need a record
// to act on.
func (a *API) storedActor(w http.ResponseWriter, r *http.Request) (*types.User, bool) {
	actor, ok := gate.ActorFromContext(r.Context())
	if !ok {
		a.internalErrorResponse(w)
		return nil, false
	}

	if actor.User == nil {
		a.errorResponse(w, http.StatusConflict, "no_user_record", "no user record for this identity")
		return nil, false
	}

	return actor.User, true
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

// serviceErrorResponse maps domain errors to 4xx responses. Anything else is
// a storage or infrastructure failure and stays a generic 500; a storage
// timeout must never surface as a domain error.
func (a *API) serviceErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, invites.ErrInvalidCode):
		a.errorResponse(w, http.StatusNotFound, "invalid_code", "invite code not recognized")
	case errors.Is(err, ErrAlreadyMember):
		a.errorResponse(w, http.StatusConflict, "already_member", "you already belong to a company; leave it first")
	case errors.Is(err, ErrAlreadyOwnsOrMember):
		a.errorResponse(w, http.StatusConflict, "already_owns_or_member", "you already own or belong to a company")
	case errors.Is(err, ErrNotOwner):
		a.errorResponse(w, http.StatusForbidden, "not_owner", "only the company owner may do this")
	case errors.Is(err, ErrSeatLimitReached):
		a.errorResponse(w, http.StatusConflict, "seat_limit_reached", "the plan's seat limit is reached")
	case errors.Is(err, ErrRoleNotEligible):
		a.errorResponse(w, http.StatusForbidden, "role_not_eligible", "your role cannot create a company")
	case errors.Is(err, ErrInvalidPlan):
		a.errorResponse(w, http.StatusBadRequest, "invalid_plan", "unknown plan")
	case errors.Is(err, ErrTenantNotFound):
		a.errorResponse(w, http.StatusNotFound, "tenant_not_found", "company not found")
	case errors.Is(err, ErrMembershipNotFound):
		a.errorResponse(w, http.StatusNotFound, "membership_not_found", "membership not found")
	default:
		a.logger.Errorf("membership operation failed: %v", err)
		a.internalErrorResponse(w)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, code, message string) {
	a.jsonResponse(w, status, map[string]interface{}{
		"status":  status,
		"code":    code,
		"message": message,
	})
}

func (a *API) internalErrorResponse(w http.ResponseWriter) {
	a.errorResponse(w, http.StatusInternalServerError, "internal", "temporary failure, try again")
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
