// Copyright 2026 CreatorStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/creatorstack/access-service/internal/identity"
	"github.com/creatorstack/access-service/internal/logging"
	"github.com/creatorstack/access-service/internal/monitoring"
	"github.com/creatorstack/access-service/internal/storage"
	"github.com/creatorstack/access-service/internal/tracing"
	"github.com/creatorstack/access-service/internal/types"
	"github.com/creatorstack/access-service/pkg/authentication"
	"github.com/creatorstack/access-service/pkg/roles"
)

//go:generate mockgen -build_flags=--mod=mod -package gate -destination ./mock_gate.go -source=./interfaces.go

const testSuperAdminEmail = "root@creatorstack.io"

func newTestMiddleware(t *testing.T) (*Middleware, *MockStorageInterface, *MockIdentityInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockIdentity := NewMockIdentityInterface(ctrl)

	m := NewMiddleware(
		mockStorage,
		mockIdentity,
		roles.NewResolver(testSuperAdminEmail),
		"/signin",
		"/dashboard",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return m, mockStorage, mockIdentity
}

func serveGated(t *testing.T, m *Middleware, userID string, allowed ...types.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	handler := m.Protect(allowed...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	if userID != "" {
		req = req.WithContext(authentication.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func TestProtectUnauthenticated(t *testing.T) {
	m, _, _ := newTestMiddleware(t)

	rec, reached := serveGated(t, m, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "sign_in", body["code"])
	assert.Equal(t, "/signin", body["sign_in"])
}

func TestProtectApprovedMember(t *testing.T) {
	m, mockStorage, _ := newTestMiddleware(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Approved: true}, nil)
	mockStorage.EXPECT().GetMaintenance(gomock.Any()).Return(&types.MaintenanceState{}, nil)

	rec, reached := serveGated(t, m, "user-1")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectAttachesActor(t *testing.T) {
	m, mockStorage, _ := newTestMiddleware(t)
	user := &types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleManager, Approved: true}
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
	mockStorage.EXPECT().GetMaintenance(gomock.Any()).Return(&types.MaintenanceState{}, nil)

	var actor *Actor
	handler := m.Protect()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		actor = got
	}))

	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, actor)
	assert.Equal(t, "user-1", actor.UserID)
	assert.Equal(t, types.RoleManager, actor.Role)
	assert.False(t, actor.SuperAdmin)
}

func TestProtectMaintenance(t *testing.T) {
	m, mockStorage, _ := newTestMiddleware(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Approved: true}, nil)
	mockStorage.EXPECT().GetMaintenance(gomock.Any()).
		Return(&types.MaintenanceState{Enabled: true, Message: "back soon"}, nil)

	rec, reached := serveGated(t, m, "user-1")

	assert.False(t, reached)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "maintenance", body["code"])
	assert.Equal(t, "back soon", body["message"])
}

func TestProtectSuperAdminWithoutRecord(t *testing.T) {
	// The override identity signs in before any user record exists. The gate
	// resolves the email from the identity provider and skips the
	// maintenance lookup entirely.
	m, mockStorage, mockIdentity := newTestMiddleware(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "root-id").Return(nil, storage.ErrNotFound)
	mockIdentity.EXPECT().GetTraits(gomock.Any(), "root-id").
		Return(&identity.Traits{Email: testSuperAdminEmail}, nil)

	rec, reached := serveGated(t, m, "root-id", types.RoleManager)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectUnapprovedAndBlocked(t *testing.T) {
	m, mockStorage, _ := newTestMiddleware(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Blocked: true}, nil)
	mockStorage.EXPECT().GetMaintenance(gomock.Any()).Return(&types.MaintenanceState{}, nil)

	rec, reached := serveGated(t, m, "user-1")

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "awaiting_approval", body["code"])
}

func TestProtectSuspended(t *testing.T) {
	m, mockStorage, _ := newTestMiddleware(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleModel, Approved: true, Blocked: true}, nil)
	mockStorage.EXPECT().GetMaintenance(gomock.Any()).Return(&types.MaintenanceState{}, nil)

	rec, reached := serveGated(t, m, "user-1")

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "suspended", body["code"])
}

func TestProtectRoleMissRedirects(t *testing.T) {
	m, mockStorage, _ := newTestMiddleware(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").
		Return(&types.User{ID: "user-1", Email: "m@example.com", Role: types.RoleCutter, Approved: true}, nil)
	mockStorage.EXPECT().GetMaintenance(gomock.Any()).Return(&types.MaintenanceState{}, nil)

	rec, reached := serveGated(t, m, "user-1", types.RoleManager, types.RoleAdmin)

	assert.False(t, reached)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestProtectStorageFailureIsNotABlockScreen(t *testing.T) {
	m, mockStorage, _ := newTestMiddleware(t)
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, errors.New("db down"))

	rec, reached := serveGated(t, m, "user-1")

	assert.False(t, reached)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "code")
}
