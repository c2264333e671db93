package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"environment-deployments/config"
	"environment-deployments/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(zap.NewNop().Sugar(), config.GitHubConfig{
		APIURL:         srv.URL,
		GraphQLURL:     srv.URL + "/graphql",
		Token:          "test-token",
		RequestTimeout: 5 * time.Second,
		PageSize:       100,
	})
}

func TestQueryStructuredSuccess(t *testing.T) {
	var gotAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/graphql", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data": {"repository": {"deployments": {"nodes": []}}}}`))
	}))

	raw, err := c.QueryStructured(context.Background(), "{}")
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", gotAuth)

	nodes, err := ParseStructuredDeployments(raw)
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestQueryStructuredPolicyBlock(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"type": "FORBIDDEN", "message": "Resource protected by organization SAML enforcement."}]}`))
	}))

	_, err := c.QueryStructured(context.Background(), "{}")
	require.ErrorIs(t, err, entities.ErrPolicyBlocked)
}

func TestQueryStructuredTopLevelMessage(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Bad credentials"}`))
	}))

	_, err := c.QueryStructured(context.Background(), "{}")
	require.Error(t, err)
	require.NotErrorIs(t, err, entities.ErrPolicyBlocked)
	require.Contains(t, err.Error(), "Bad credentials")
}

func TestQueryStructuredGenericEnvelope(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "Something went wrong"}]}`))
	}))

	_, err := c.QueryStructured(context.Background(), "{}")
	require.Error(t, err)
	require.NotErrorIs(t, err, entities.ErrPolicyBlocked)
}

func TestQueryResourceStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{"not_found", http.StatusNotFound, entities.ErrNotFound},
		{"forbidden", http.StatusForbidden, entities.ErrForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := c.QueryResource(context.Background(), "repos/acme/widgets/deployments")
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestQueryResourceServerErrorIsGeneric(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.QueryResource(context.Background(), "repos/acme/widgets/deployments")
	require.Error(t, err)
	require.NotErrorIs(t, err, entities.ErrNotFound)
	require.NotErrorIs(t, err, entities.ErrForbidden)
}

func TestQueryResourceSuccess(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/acme/widgets/deployments", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("per_page"))
		require.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`[{"id": 1, "sha": "aaa111", "ref": "main", "environment": "production", "created_at": "2024-05-01T00:00:10Z"}]`))
	}))

	raw, err := c.QueryResource(context.Background(), DeploymentsPath(entities.RepoKey{Owner: "acme", Name: "widgets"}, 100))
	require.NoError(t, err)

	deployments, err := ParseResourceDeployments(raw)
	require.NoError(t, err)
	require.Len(t, deployments, 1)
	require.Equal(t, int64(1), deployments[0].ID)
	require.Equal(t, "production", deployments[0].Environment)
}
