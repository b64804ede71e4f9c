package access_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authzkit/modules/access"
	"github.com/dmitrymomot/authzkit/pkg/authz"
)

func newTestServer(t *testing.T) (*httptest.Server, *authz.Engine) {
	t.Helper()

	engine := authz.New()
	engine.AddRole(authz.Role{Name: "viewer", Permissions: []string{"content:read"}})
	engine.AddRole(authz.Role{Name: "editor", Permissions: []string{"content:write"}, Inherits: []string{"viewer"}})

	r := chi.NewRouter()
	r.Mount("/access", access.Router(engine))

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, engine
}

func postCheck(t *testing.T, url string, req access.CheckRequest) (*http.Response, authz.Authorization) {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(url+"/access/check", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decision authz.Authorization
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decision))
	}
	return resp, decision
}

func TestRouter_Check(t *testing.T) {
	t.Parallel()

	t.Run("allowed", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)
		resp, decision := postCheck(t, server.URL, access.CheckRequest{
			Subject:    authz.Subject{ID: uuid.NewString(), Roles: []string{"editor"}},
			Permission: "content:read",
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.Reason)
		assert.Equal(t, "content:read", decision.Permission)
	})

	t.Run("denied with reason", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)
		resp, decision := postCheck(t, server.URL, access.CheckRequest{
			Subject:    authz.Subject{ID: uuid.NewString(), Roles: []string{"viewer"}},
			Permission: "content:write",
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.False(t, decision.Allowed)
		assert.Equal(t, authz.ReasonPermissionNotFound, decision.Reason)
	})

	t.Run("policy context forwarded", func(t *testing.T) {
		t.Parallel()

		server, engine := newTestServer(t)
		engine.AddPolicy("content:write", func(ctx context.Context, s authz.Subject, c authz.Context) (bool, error) {
			return c["env"] == "staging", nil
		})

		resp, decision := postCheck(t, server.URL, access.CheckRequest{
			Subject:    authz.Subject{ID: uuid.NewString(), Roles: []string{"editor"}},
			Permission: "content:write",
			Context:    authz.Context{"env": "staging"},
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, decision.Allowed)
	})

	t.Run("missing permission", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)
		resp, _ := postCheck(t, server.URL, access.CheckRequest{
			Subject: authz.Subject{ID: uuid.NewString(), Roles: []string{"viewer"}},
		})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		server, _ := newTestServer(t)
		resp, err := http.Post(server.URL+"/access/check", "application/json", bytes.NewReader([]byte("{not-json")))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("evaluation failure maps to 500", func(t *testing.T) {
		t.Parallel()

		server, engine := newTestServer(t)
		engine.AddPolicy("content:read", func(ctx context.Context, s authz.Subject, c authz.Context) (bool, error) {
			return false, errors.New("directory unavailable")
		})

		resp, _ := postCheck(t, server.URL, access.CheckRequest{
			Subject:    authz.Subject{ID: uuid.NewString(), Roles: []string{"viewer"}},
			Permission: "content:read",
		})

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
