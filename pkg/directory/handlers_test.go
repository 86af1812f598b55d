// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

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
	api.RegisterWebhookEndpoints(f.mux)
	api.RegisterEndpoints(f.mux)
	return f
}

// expectActor lets the given user through the gate for one request.
func (f *apiFixture) expectActor(u *types.User) {
	f.gateStorage.EXPECT().GetUserByID(gomock.Any(), u.ID).Return(u, nil)
	f.gateStorage.EXPECT().GetMaintenance(gomock.Any()).Return(&types.MaintenanceState{}, nil)
}

func (f *apiFixture) do(method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
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

func TestRegistrationWebhook(t *testing.T) {
	payload := `{"id":"identity-1","traits":{"email":"new@example.com","name":"New User"}}`

	t.Run("provisions without authentication", func(t *testing.T) {
		f := newTestAPI(t)
		f.service.EXPECT().ProvisionUser(gomock.Any(), "identity-1", "new@example.com", "New User", "").
			Return(&types.User{ID: "identity-1", Email: "new@example.com", Role: types.RoleUnset}, nil)

		rec := f.do(http.MethodPost, "/api/v0/webhooks/registration", payload, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "identity-1", body["id"])
		assert.Equal(t, false, body["approved"])
	})

	t.Run("a replay returns the existing record", func(t *testing.T) {
		f := newTestAPI(t)
		f.service.EXPECT().ProvisionUser(gomock.Any(), "identity-1", "new@example.com", "New User", "").
			Return(&types.User{ID: "identity-1", Email: "new@example.com", Role: types.RoleModel, Approved: true}, nil)

		rec := f.do(http.MethodPost, "/api/v0/webhooks/registration", payload, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "model", decodeBody(t, rec)["role"])
	})

	t.Run("400 on a malformed body", func(t *testing.T) {
		f := newTestAPI(t)

		rec := f.do(http.MethodPost, "/api/v0/webhooks/registration", `{`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMeEndpoint(t *testing.T) {
	t.Run("returns the profile before approval", func(t *testing.T) {
		f := newTestAPI(t)
		f.service.EXPECT().Profile(gomock.Any(), "user-1").
			Return(&types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleUnset}, nil)

		rec := f.do(http.MethodGet, "/api/v0/me", "", "user-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "user-1", body["id"])
		assert.Equal(t, false, body["approved"])
	})

	t.Run("401 when unauthenticated", func(t *testing.T) {
		f := newTestAPI(t)

		rec := f.do(http.MethodGet, "/api/v0/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("404 when the record is missing", func(t *testing.T) {
		f := newTestAPI(t)
		f.service.EXPECT().Profile(gomock.Any(), "nobody").Return(nil, ErrUserNotFound)

		rec := f.do(http.MethodGet, "/api/v0/me", "", "nobody")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSelectRoleEndpoint(t *testing.T) {
	t.Run("200 with the chosen role", func(t *testing.T) {
		f := newTestAPI(t)
		f.service.EXPECT().SelectRole(gomock.Any(), "user-1", types.RoleCutter).
			Return(&types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleCutter}, nil)

		rec := f.do(http.MethodPost, "/api/v0/me/role", `{"role":"cutter"}`, "user-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cutter", decodeBody(t, rec)["role"])
	})

	t.Run("400 on a role outside the closed set", func(t *testing.T) {
		f := newTestAPI(t)

		rec := f.do(http.MethodPost, "/api/v0/me/role", `{"role":"admin"}`, "user-1")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("409 on a second choice", func(t *testing.T) {
		f := newTestAPI(t)
		f.service.EXPECT().SelectRole(gomock.Any(), "user-1", types.RoleModel).Return(nil, ErrRoleAlreadySet)

		rec := f.do(http.MethodPost, "/api/v0/me/role", `{"role":"model"}`, "user-1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "role_already_set", decodeBody(t, rec)["code"])
	})
}

func TestAdminEndpoints(t *testing.T) {
	admin := &types.User{ID: "admin-1", Email: "a@example.com", Role: types.RoleAdmin, Approved: true}

	t.Run("lists users", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(admin)
		f.service.EXPECT().ListUsers(gomock.Any()).
			Return([]*types.User{
				{ID: "user-1", Email: "m@example.com", Role: types.RoleModel},
				{ID: "user-2", Email: "c@example.com", Role: types.RoleCutter, Approved: true},
			}, nil)

		rec := f.do(http.MethodGet, "/api/v0/admin/users", "", "admin-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		users := decodeBody(t, rec)["users"].([]interface{})
		assert.Len(t, users, 2)
	})

	t.Run("approves a user", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(admin)
		f.service.EXPECT().SetApproval(gomock.Any(), "admin-1", "user-1", true).Return(nil)

		rec := f.do(http.MethodPut, "/api/v0/admin/users/user-1/approval", `{"approved":true}`, "admin-1")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("blocks a user", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(admin)
		f.service.EXPECT().SetBlocked(gomock.Any(), "admin-1", "user-1", true).Return(nil)

		rec := f.do(http.MethodPut, "/api/v0/admin/users/user-1/block", `{"blocked":true}`, "admin-1")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("400 when the approval flag is absent", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(admin)

		rec := f.do(http.MethodPut, "/api/v0/admin/users/user-1/approval", `{}`, "admin-1")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("a non-admin is redirected away", func(t *testing.T) {
		f := newTestAPI(t)
		member := &types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Approved: true}
		f.expectActor(member)

		rec := f.do(http.MethodGet, "/api/v0/admin/users", "", "user-1")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})
}

func TestMaintenanceEndpoints(t *testing.T) {
	admin := &types.User{ID: "admin-1", Email: "a@example.com", Role: types.RoleAdmin, Approved: true}

	t.Run("reads the state", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(admin)
		f.service.EXPECT().Maintenance(gomock.Any()).
			Return(&types.MaintenanceState{Enabled: true, Message: "back soon"}, nil)

		rec := f.do(http.MethodGet, "/api/v0/admin/maintenance", "", "admin-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["enabled"])
		assert.Equal(t, "back soon", body["message"])
	})

	t.Run("writes the state", func(t *testing.T) {
		f := newTestAPI(t)
		f.expectActor(admin)
		f.service.EXPECT().SetMaintenance(gomock.Any(), "admin-1", true, "migration underway").Return(nil)

		rec := f.do(http.MethodPut, "/api/v0/admin/maintenance", `{"enabled":true,"message":"migration underway"}`, "admin-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["enabled"])
	})

	t.Run("an admin passes the gate while maintenance is on", func(t *testing.T) {
		f := newTestAPI(t)
		f.gateStorage.EXPECT().GetUserByID(gomock.Any(), "admin-1").Return(admin, nil)
		f.gateStorage.EXPECT().GetMaintenance(gomock.Any()).
			Return(&types.MaintenanceState{Enabled: true, Message: "back soon"}, nil)
		f.service.EXPECT().Maintenance(gomock.Any()).
			Return(&types.MaintenanceState{Enabled: true, Message: "back soon"}, nil)

		rec := f.do(http.MethodGet, "/api/v0/admin/maintenance", "", "admin-1")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
