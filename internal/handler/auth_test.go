package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginMeRoundTrip(t *testing.T) {
	app := newTestApp(t)

	access, _, userID := registerAndLogin(t, app, "alice@example.edu", "alice")

	w := doJSON(app, http.MethodGet, "/api/auth/me", access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)
	assert.Equal(t, float64(userID), me["id"])
	assert.Equal(t, "alice", me["username"])
	assert.Equal(t, "alice@example.edu", me["email"])
}

func TestRegisterValidationResponse(t *testing.T) {
	app := newTestApp(t)

	w := doJSON(app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "bad",
		"username": "al",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	fields := body["errors"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "full_name")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app, "alice@example.edu", "alice")

	w := doJSON(app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":     "alice@example.edu",
		"username":  "alice2",
		"full_name": "Other Alice",
		"password":  "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app, "alice@example.edu", "alice")

	w := doJSON(app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.edu",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	app := newTestApp(t)
	_, refresh, _ := registerAndLogin(t, app, "alice@example.edu", "alice")

	w := doJSON(app, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": refresh,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	access := body["access_token"].(string)
	require.NotEmpty(t, access)

	w = doJSON(app, http.MethodGet, "/api/auth/me", access, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessTokenRejectedAsRefreshToken(t *testing.T) {
	app := newTestApp(t)
	access, refresh, _ := registerAndLogin(t, app, "alice@example.edu", "alice")

	// An access token is not exchangeable.
	w := doJSON(app, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": access,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A refresh token does not pass the auth middleware.
	w = doJSON(app, http.MethodGet, "/api/auth/me", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/resources", "/api/groups", "/api/users", "/api/auth/me"} {
		w := doJSON(app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestListUsers(t *testing.T) {
	app := newTestApp(t)
	access, _, _ := registerAndLogin(t, app, "alice@example.edu", "alice")
	registerAndLogin(t, app, "bob@example.edu", "bob")

	w := doJSON(app, http.MethodGet, "/api/users", access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}
