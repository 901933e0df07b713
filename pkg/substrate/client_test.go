package substrate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastRetry keeps backoff delays out of the test runtime.
var fastRetry = RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:       server.URL,
		ServiceSecret: "svc-secret",
		Timeout:       5 * time.Second,
		Retry:         fastRetry,
	})
}

func TestClient_Auth(t *testing.T) {
	t.Run("sends service secret by default", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestClient(server)
		require.NoError(t, client.Health(context.Background()))
		assert.Equal(t, "Bearer svc-secret", gotAuth)
	})

	t.Run("WithToken overrides the bearer", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestClient(server).WithToken("user-jwt")
		require.NoError(t, client.Health(context.Background()))
		assert.Equal(t, "Bearer user-jwt", gotAuth)
	})

	t.Run("WithToken does not mutate the base client", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		base := newTestClient(server)
		_ = base.WithToken("user-jwt")
		require.NoError(t, base.Health(context.Background()))
		assert.Equal(t, "Bearer svc-secret", gotAuth)
	})
}

func TestClient_Retry(t *testing.T) {
	t.Run("retries transient server errors", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if hits.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestClient(server)
		require.NoError(t, client.Health(context.Background()))
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("retries rate limiting", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if hits.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestClient(server)
		require.NoError(t, client.Health(context.Background()))
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestClient(server)
		err := client.Health(context.Background())
		require.Error(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestClient(server)
		err := client.Health(context.Background())
		require.Error(t, err)
		assert.Equal(t, int32(3), hits.Load())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Run("decodes the structured error envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"kind":"not_found","message":"basket missing"}}`))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CreateBasket(context.Background(), CreateBasketInput{WorkspaceID: "ws-1", Name: "x"})
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "not_found", apiErr.Kind)
		assert.Equal(t, "basket missing", apiErr.Message)
		assert.True(t, IsNotFound(err))
	})

	t.Run("keeps the raw body for unknown error shapes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte("duplicate promotion"))
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.MarkOutputPromoted(context.Background(), "out-1", "prop-1", "manual", "user-1")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "duplicate promotion")
		assert.True(t, IsConflict(err))
	})
}

func TestClient_CircuitBreaker(t *testing.T) {
	t.Run("opens after consecutive failed calls and fails fast", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(Config{
			BaseURL:       server.URL,
			ServiceSecret: "svc-secret",
			Timeout:       5 * time.Second,
			Breaker:       BreakerConfig{FailureThreshold: 2, Cooldown: time.Minute, ProbeBudget: 1},
			Retry:         RetryConfig{MaxAttempts: 1},
		})

		require.Error(t, client.Health(context.Background()))
		require.Error(t, client.Health(context.Background()))
		assert.Equal(t, "open", client.BreakerState())

		// Third call is rejected without reaching the server.
		err := client.Health(context.Background())
		assert.ErrorIs(t, err, ErrCircuitOpen)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("each call counts one failure regardless of internal retries", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(Config{
			BaseURL:       server.URL,
			ServiceSecret: "svc-secret",
			Timeout:       5 * time.Second,
			Breaker:       BreakerConfig{FailureThreshold: 2, Cooldown: time.Minute, ProbeBudget: 1},
			Retry:         fastRetry,
		})

		// One call, three attempts, still only one breaker failure.
		require.Error(t, client.Health(context.Background()))
		assert.Equal(t, int32(3), hits.Load())
		assert.Equal(t, "closed", client.BreakerState())

		require.Error(t, client.Health(context.Background()))
		assert.Equal(t, "open", client.BreakerState())
	})

	t.Run("probe after cooldown closes the circuit on success", func(t *testing.T) {
		var failing atomic.Bool
		failing.Store(true)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if failing.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(Config{
			BaseURL:       server.URL,
			ServiceSecret: "svc-secret",
			Timeout:       5 * time.Second,
			Breaker:       BreakerConfig{FailureThreshold: 1, Cooldown: time.Minute, ProbeBudget: 1},
			Retry:         RetryConfig{MaxAttempts: 1},
		})
		current := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		client.breaker.now = func() time.Time { return current }

		require.Error(t, client.Health(context.Background()))
		assert.Equal(t, "open", client.BreakerState())

		failing.Store(false)
		current = current.Add(61 * time.Second)
		require.NoError(t, client.Health(context.Background()))
		assert.Equal(t, "closed", client.BreakerState())
	})
}

func TestClient_CreateDump(t *testing.T) {
	t.Run("request id is derived from content", func(t *testing.T) {
		var requestIDs []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			requestIDs = append(requestIDs, body["request_id"].(string))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Dump{ID: "dump-1", BasketID: "basket-1"})
		}))
		defer server.Close()

		client := newTestClient(server)
		_, err := client.CreateDump(context.Background(), "basket-1", "same content", nil)
		require.NoError(t, err)
		_, err = client.CreateDump(context.Background(), "basket-1", "same content", nil)
		require.NoError(t, err)
		_, err = client.CreateDump(context.Background(), "basket-1", "different content", nil)
		require.NoError(t, err)

		require.Len(t, requestIDs, 3)
		assert.Equal(t, requestIDs[0], requestIDs[1])
		assert.NotEqual(t, requestIDs[0], requestIDs[2])
	})

	t.Run("same content in different baskets gets different ids", func(t *testing.T) {
		assert.NotEqual(t,
			DumpRequestID("basket-1", "content"),
			DumpRequestID("basket-2", "content"))
	})
}

func TestClient_Operations(t *testing.T) {
	t.Run("list work outputs forwards filters", func(t *testing.T) {
		var gotQuery map[string][]string
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(WorkOutputPage{
				Items: []WorkOutput{{ID: "out-1", OutputType: "finding"}},
				Total: 1,
			})
		}))
		defer server.Close()

		client := newTestClient(server)
		page, err := client.ListWorkOutputs(context.Background(), "basket-1", OutputFilter{
			SupervisionStatus: "pending",
			AgentKind:         "research",
			Limit:             20,
			Offset:            40,
		})
		require.NoError(t, err)
		assert.Equal(t, "/api/baskets/basket-1/work-outputs", gotPath)
		assert.Equal(t, "pending", gotQuery["supervision_status"][0])
		assert.Equal(t, "research", gotQuery["agent_kind"][0])
		assert.Equal(t, "20", gotQuery["limit"][0])
		assert.Equal(t, "40", gotQuery["offset"][0])
		require.Len(t, page.Items, 1)
		assert.Equal(t, "finding", page.Items[0].OutputType)
	})

	t.Run("create basket decodes the response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/baskets", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Basket{ID: "basket-9", WorkspaceID: "ws-1", Name: "Launch plan"})
		}))
		defer server.Close()

		client := newTestClient(server)
		basket, err := client.CreateBasket(context.Background(), CreateBasketInput{WorkspaceID: "ws-1", Name: "Launch plan"})
		require.NoError(t, err)
		assert.Equal(t, "basket-9", basket.ID)
		assert.Equal(t, "ws-1", basket.WorkspaceID)
	})

	t.Run("upsert context item sends a PUT", func(t *testing.T) {
		var gotMethod string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(ContextItem{ID: "ci-1", ItemType: "target_audience", ItemKey: "default"})
		}))
		defer server.Close()

		client := newTestClient(server)
		item, err := client.UpsertContextItem(context.Background(), "basket-1", UpsertContextItemInput{
			ItemType: "target_audience",
			ItemKey:  "default",
			Content:  map[string]any{"segments": []string{"smb"}},
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "ci-1", item.ID)
	})
}
