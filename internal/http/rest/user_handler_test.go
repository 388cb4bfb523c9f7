package rest

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mkamau2/jiseti/internal/model"
	"github.com/mkamau2/jiseti/util/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserValidation(t *testing.T) {
	api := newTestAPI()

	tests := []struct {
		name      string
		req       model.CreateUserRequest
		wantError string
	}{
		{
			name:      "missing everything",
			req:       model.CreateUserRequest{},
			wantError: "Email and name are required",
		},
		{
			name:      "missing name",
			req:       model.CreateUserRequest{Email: "jane@example.com"},
			wantError: "Email and name are required",
		},
		{
			name:      "missing email",
			req:       model.CreateUserRequest{Name: "Jane Wanjiku"},
			wantError: "Email and name are required",
		},
		{
			name:      "bad email",
			req:       model.CreateUserRequest{Email: "jane@", Name: "Jane Wanjiku"},
			wantError: "Invalid email format",
		},
		{
			name:      "unknown role",
			req:       model.CreateUserRequest{Email: "jane@example.com", Name: "Jane Wanjiku", Role: "superadmin"},
			wantError: "Invalid role. Must be one of: admin, reviewer, viewer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, api, http.MethodPost, "/api/users/", tt.req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, values.BadRequestBody, resp.Status)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestGuestLogin(t *testing.T) {
	api := newTestAPI()

	rec, resp := doRequest(t, api, http.MethodPost, "/api/users/login",
		model.LoginRequest{IsAnonymousGuest: true})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, values.Success, resp.Status)
	assert.Equal(t, "Browsing as Guest", resp.Message)

	var session model.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &session))
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, values.RoleViewer, session.User.Role)
	assert.True(t, session.User.IsAnonymous)
	assert.False(t, session.ExpiresAt.IsZero())
}

func TestCredentialLoginNotImplemented(t *testing.T) {
	api := newTestAPI()

	rec, resp := doRequest(t, api, http.MethodPost, "/api/users/login",
		model.LoginRequest{Email: "jane@example.com", Password: "hunter2"})

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, values.NotImplemented, resp.Status)
	assert.Equal(t, "Account login is not available yet. Continue as guest instead", resp.Error)
}

func TestGetAllUsersRejectsUnknownRoleFilter(t *testing.T) {
	api := newTestAPI()

	rec, resp := doRequest(t, api, http.MethodGet, "/api/users/?role=superadmin", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid role. Must be one of: admin, reviewer, viewer", resp.Error)
}

func TestUserRoutesRejectBadID(t *testing.T) {
	api := newTestAPI()

	role := values.RoleReviewer
	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"get", http.MethodGet, "/api/users/abc", nil},
		{"update", http.MethodPut, "/api/users/abc", model.UpdateUserRequest{}},
		{"delete", http.MethodDelete, "/api/users/abc", nil},
		{"role", http.MethodPatch, "/api/users/abc/role", model.UpdateUserRoleRequest{Role: role}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, api, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalid user ID", resp.Error)
		})
	}
}

func TestUpdateUserRejectsBadEmail(t *testing.T) {
	api := newTestAPI()

	email := "not-an-email"
	rec, resp := doRequest(t, api, http.MethodPut,
		"/api/users/6f1d9a66-3a24-4a7e-9454-1a2bc1e60a01",
		model.UpdateUserRequest{Email: &email})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email format", resp.Error)
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	api := newTestAPI()

	for _, role := range []string{"owner", "Admin", ""} {
		rec, resp := doRequest(t, api, http.MethodPatch,
			"/api/users/6f1d9a66-3a24-4a7e-9454-1a2bc1e60a01/role",
			model.UpdateUserRoleRequest{Role: role})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid role. Must be one of: admin, reviewer, viewer", resp.Error)
	}
}
