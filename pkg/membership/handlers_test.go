// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
	"github.com/creatorstack/access-service/pkg/authentication"
	"github.com/creatorstack/access-service/pkg/gate"
	"github.com/creatorstack/access-service/pkg/invites"
	"github.com/creatorstack/access-service/pkg/roles"
)

type apiFixture struct {
	service     *MockServiceInterface
	gateStorage *gate.MockStorageInterface
	mux         *chi.Mux
}

func newTestAPI(t *testing.T) *apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &apiFixture{
		service:     NewMockServiceInterface(ctrl),
		gateStorage: gate.NewMockStorageInterface(ctrl),
	}

	gateMiddleware := gate.NewMiddleware(
		f.gateStorage,
		gate.NewMockIdentityInterface(ctrl),
		roles.NewResolver("root@creatorstack.io"),
		"/signin",
		"/dashboard",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	api := NewAPI(f.service, gateMiddleware,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	f.mux = chi.NewRouter()
	api.RegisterEndpoints(f.mux)
	return f
}

// expectActor lets the given user through the gate for one request.
func (f *apiFixture) expectActor(u *types.User) {
	f.gateStorage.EXPECT().GetUserByID(gomock.Any(), u.ID).Return(u, nil)
	f.gateStorage.EXPECT().GetMaintenance(gomock.Any()).Return(&types.MaintenanceState{}, nil)
}

func (f *apiFixture) do(method, path, body, userID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req = req.WithContext(authentication.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateTenantEndpoint(t *testing.T) {
	manager := &types.User{ID: "owner-1", Email: "o@example.com", Role: types.RoleManager, Approved: true}

	t.Run("201 with the invite code", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(manager)
		f.service.EXPECT().CreateTenant(gomock.Any(), manager, "Acme Studio").
			Return(&types.Tenant{ID: "tenant-1", Name: "Acme Studio", OwnerID: "owner-1", InviteCode: "CODE2345", Plan: types.PlanFree}, nil)

		rec := f.do(http.MethodPost, "/api/v0/tenants", `{"name":"Acme Studio"}`, "owner-1")

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "CODE2345", body["invite_code"])
		assert.Equal(t, "free", body["plan"])
	})

	t.Run("400 on an empty name", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(manager)

		rec := f.do(http.MethodPost, "/api/v0/tenants", `{"name":""}`, "owner-1")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("401 when unauthenticated", func(t *testing.T) {
		f := newTestAPI(t)

		rec := f.do(http.MethodPost, "/api/v0/tenants", `{"name":"Acme"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJoinEndpoint(t *testing.T) {
	joiner := &types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Approved: true}

	t.Run("201 with the pending membership", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(joiner)
		f.service.EXPECT().RequestJoin(gomock.Any(), joiner, "code2345").
			Return(&types.Membership{ID: "membership-1", TenantID: "tenant-1", UserID: "user-1", Role: types.RoleModel, Status: types.MembershipPending}, nil)

		rec := f.do(http.MethodPost, "/api/v0/tenants/join", `{"code":"code2345"}`, "user-1")

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("404 on an unknown code", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(joiner)
		f.service.EXPECT().RequestJoin(gomock.Any(), joiner, "ZZZZ9999").Return(nil, invites.ErrInvalidCode)

		rec := f.do(http.MethodPost, "/api/v0/tenants/join", `{"code":"ZZZZ9999"}`, "user-1")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "invalid_code", decodeBody(t, rec)["code"])
	})

	t.Run("409 when already a member", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(joiner)
		f.service.EXPECT().RequestJoin(gomock.Any(), joiner, "CODE2345").Return(nil, ErrAlreadyMember)

		rec := f.do(http.MethodPost, "/api/v0/tenants/join", `{"code":"CODE2345"}`, "user-1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "already_member", decodeBody(t, rec)["code"])
	})
}

func TestApproveEndpoint(t *testing.T) {
	owner := &types.User{ID: "owner-1", Email: "o@example.com", Role: types.RoleManager, Approved: true}

	t.Run("204 on success", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)
		f.service.EXPECT().Approve(gomock.Any(), "owner-1", "tenant-1", "user-1").Return(nil)

		rec := f.do(http.MethodPost, "/api/v0/tenants/tenant-1/members/user-1/approve", "", "owner-1")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("409 at the seat limit", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)
		f.service.EXPECT().Approve(gomock.Any(), "owner-1", "tenant-1", "user-1").Return(ErrSeatLimitReached)

		rec := f.do(http.MethodPost, "/api/v0/tenants/tenant-1/members/user-1/approve", "", "owner-1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "seat_limit_reached", decodeBody(t, rec)["code"])
	})

	t.Run("403 for a non-owner", func(t *testing.T) {
		f := newTestAPI(t)
		intruder := &types.User{ID: "user-9", Email: "x@example.com", Role: types.RoleModel, Approved: true}
		f.expectActor(intruder)
		f.service.EXPECT().Approve(gomock.Any(), "user-9", "tenant-1", "user-1").Return(ErrNotOwner)

		rec := f.do(http.MethodPost, "/api/v0/tenants/tenant-1/members/user-1/approve", "", "user-9")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "not_owner", decodeBody(t, rec)["code"])
	})
}

func TestRemoveAndLeaveEndpoints(t *testing.T) {
	owner := &types.User{ID: "owner-1", Email: "o@example.com", Role: types.RoleManager, Approved: true}
	member := &types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Approved: true}

	t.Run("remove returns 204", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)
		f.service.EXPECT().Remove(gomock.Any(), "owner-1", "tenant-1", "user-1").Return(nil)

		rec := f.do(http.MethodDelete, "/api/v0/tenants/tenant-1/members/user-1", "", "owner-1")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("leave returns 204", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(member)
		f.service.EXPECT().Leave(gomock.Any(), member).Return(nil)

		rec := f.do(http.MethodPost, "/api/v0/tenants/leave", "", "user-1")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("leave without a membership returns 404", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(member)
		f.service.EXPECT().Leave(gomock.Any(), member).Return(ErrMembershipNotFound)

		rec := f.do(http.MethodPost, "/api/v0/tenants/leave", "", "user-1")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMyTenantEndpoint(t *testing.T) {
	t.Run("members do not see the invite code", func(t *testing.T) {
		f := newTestAPI(t)
		member := &types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Approved: true}
		f.expectActor(member)
		f.service.EXPECT().MyTenant(gomock.Any(), member).
			Return(&types.Tenant{ID: "tenant-1", Name: "Acme", OwnerID: "owner-1", InviteCode: "CODE2345", Plan: types.PlanPro}, nil)

		rec := f.do(http.MethodGet, "/api/v0/tenants/mine", "", "user-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, decodeBody(t, rec), "invite_code")
	})

	t.Run("the owner sees the invite code", func(t *testing.T) {
		f := newTestAPI(t)
		owner := &types.User{ID: "owner-1", Email: "o@example.com", Role: types.RoleManager, Approved: true}
		f.expectActor(owner)
		f.service.EXPECT().MyTenant(gomock.Any(), owner).
			Return(&types.Tenant{ID: "tenant-1", Name: "Acme", OwnerID: "owner-1", InviteCode: "CODE2345", Plan: types.PlanPro}, nil)

		rec := f.do(http.MethodGet, "/api/v0/tenants/mine", "", "owner-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "CODE2345", decodeBody(t, rec)["invite_code"])
	})
}

func TestPlanAndCodeEndpoints(t *testing.T) {
	owner := &types.User{ID: "owner-1", Email: "o@example.com", Role: types.RoleManager, Approved: true}

	t.Run("rotate returns the new code", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)
		f.service.EXPECT().RotateInviteCode(gomock.Any(), "owner-1", "tenant-1").Return("NEWC2345", nil)

		rec := f.do(http.MethodPost, "/api/v0/tenants/tenant-1/invite-code", "", "owner-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "NEWC2345", decodeBody(t, rec)["invite_code"])
	})

	t.Run("plan change validates the plan name", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)

		rec := f.do(http.MethodPut, "/api/v0/tenants/tenant-1/plan", `{"plan":"platinum"}`, "owner-1")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("plan change returns the updated tenant", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)
		f.service.EXPECT().ChangePlan(gomock.Any(), "owner-1", "tenant-1", types.PlanBusiness).
			Return(&types.Tenant{ID: "tenant-1", Name: "Acme", OwnerID: "owner-1", InviteCode: "CODE2345", Plan: types.PlanBusiness}, nil)

		rec := f.do(http.MethodPut, "/api/v0/tenants/tenant-1/plan", `{"plan":"business"}`, "owner-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "business", decodeBody(t, rec)["plan"])
	})
}

func TestListEndpoints(t *testing.T) {
	owner := &types.User{ID: "owner-1", Email: "o@example.com", Role: types.RoleManager, Approved: true}

	t.Run("members list", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)
		f.service.EXPECT().ListMembers(gomock.Any(), "owner-1", "tenant-1").
			Return([]*types.Membership{
				{ID: "m-1", TenantID: "tenant-1", UserID: "user-1", Role: types.RoleModel, Status: types.MembershipApproved},
				{ID: "m-2", TenantID: "tenant-1", UserID: "user-2", Role: types.RoleCutter, Status: types.MembershipPending},
			}, nil)

		rec := f.do(http.MethodGet, "/api/v0/tenants/tenant-1/members", "", "owner-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		members := decodeBody(t, rec)["members"].([]interface{})
		assert.Len(t, members, 2)
	})

	t.Run("events list", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(owner)
		f.service.EXPECT().ListEvents(gomock.Any(), "owner-1", "tenant-1").
			Return([]*types.MembershipEvent{
				{ID: "e-1", TenantID: "tenant-1", Action: types.EventTenantCreated},
			}, nil)

		rec := f.do(http.MethodGet, "/api/v0/tenants/tenant-1/events", "", "owner-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		events := decodeBody(t, rec)["events"].([]interface{})
		assert.Len(t, events, 1)
	})
}
