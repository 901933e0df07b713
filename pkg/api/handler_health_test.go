package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("healthy service", func(t *testing.T) {
		// No credentials: orchestrator probes run unauthenticated.
		resp := f.request(http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out HealthResponse
		f.decode(resp, &out)
		assert.Equal(t, healthStatusHealthy, out.Status)
		assert.NotEmpty(t, out.Version)
		require.Contains(t, out.Checks, "database")
		assert.Equal(t, healthStatusHealthy, out.Checks["database"].Status)

		// No worker pool on this replica, so no worker_pool check.
		assert.NotContains(t, out.Checks, "worker_pool")
	})

	t.Run("database probe", func(t *testing.T) {
		resp := f.request(http.MethodGet, "/health/db", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out DBHealthResponse
		f.decode(resp, &out)
		assert.Equal(t, healthStatusHealthy, out.Status)
		require.NotNil(t, out.Database)
		assert.Equal(t, "healthy", out.Database.Status)
	})

	t.Run("queue probe reports disabled without a pool", func(t *testing.T) {
		resp := f.request(http.MethodGet, "/health/queue", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out QueueHealthResponse
		f.decode(resp, &out)
		assert.Equal(t, "disabled", out.Status)
		assert.Nil(t, out.Pool)
	})
}
