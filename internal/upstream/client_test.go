package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/warrior-admin-console/internal/config"
	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.UpstreamConfig{BaseURL: server.URL, TimeoutSeconds: 5}, nil, nil)
}

func TestLoginUnwrapsEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"user": {"id": "adm-1", "email": "admin@example.com", "role": "admin", "permissions": ["manage_users"]},
				"accessToken": "access-token",
				"refreshToken": "refresh-token"
			}
		}`))
	})

	session, err := client.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	require.True(t, session.Active())
	assert.Equal(t, "adm-1", session.User.ID)
	assert.Equal(t, domain.RoleAdmin, session.User.Role)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "refresh-token", session.RefreshToken)
}

func TestLoginCollapsesRejectionToAuthenticationFailed(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrAuthenticationFailed)
}

func TestLoginCollapsesTransportFailureToAuthenticationFailed(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // refuse every connection
	client := New(config.UpstreamConfig{BaseURL: server.URL, TimeoutSeconds: 1}, nil, nil)

	_, err := client.Login(context.Background(), "admin@example.com", "secret")
	assert.ErrorIs(t, err, util.ErrAuthenticationFailed)
}

func TestLoginRejectsIncompletePayload(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":{"accessToken":"access-token"}}`))
	})

	_, err := client.Login(context.Background(), "admin@example.com", "secret")
	assert.ErrorIs(t, err, util.ErrAuthenticationFailed)
}

func TestDoForwardsBearerTokenAndQuery(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"status":"success","data":{"users":[],"total":0}}`))
	})

	list, err := client.Users(context.Background(), "access-token", ListParams{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestDoMapsUpstreamErrorStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"error","message":"insufficient permissions"}`))
	})

	_, err := client.Users(context.Background(), "access-token", ListParams{})
	require.Error(t, err)

	domainErr := util.ToDomainError(err)
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	assert.Equal(t, "insufficient permissions", domainErr.Message)
}

func TestDoFlagsUnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := New(config.UpstreamConfig{BaseURL: server.URL, TimeoutSeconds: 1}, nil, nil)

	_, err := client.Users(context.Background(), "access-token", ListParams{})
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_UNREACHABLE", util.ToDomainError(err).Code)
}
