// Package e2e boots complete platform instances against real PostgreSQL
// and exercises them end to end: HTTP in, queue workers, agent runs over
// a scripted LLM, and a fake substrate service.
package e2e

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent"
	"github.com/cobbleworks/foundry/pkg/api"
	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/database"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/masking"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/queue"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/substrate"
	testdb "github.com/cobbleworks/foundry/test/database"
	"github.com/cobbleworks/foundry/test/util"
)

const (
	e2eJWTSecret  = "e2e-test-jwt-secret"
	e2eServiceKey = "e2e-test-service-role-key"
)

// TestApp boots a complete platform instance for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Test wiring
	LLM       *ScriptedLLMClient
	Substrate *SubstrateFake

	// Real infrastructure
	SubstrateClient *substrate.Client
	Hub             *progress.Hub
	EventStore      *events.Store
	Broadcaster     *events.Broadcaster
	WorkerPool      *queue.WorkerPool

	// Services, exposed for direct state assertions
	Tickets  *services.TicketService
	Requests *services.WorkRequestRecorder
	Registry *services.SessionRegistry
	Projects *services.ProjectService

	// Runtime
	BaseURL string
	PodID   string

	ts *httptest.Server
	t  *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	llm           *ScriptedLLMClient
	workerCount   int
	trialCap      int
	maxIterations int
	ticketTimeout time.Duration
	breaker       substrate.BreakerConfig
	retryAttempts int
	dbClient      *database.Client
	podID         string
	eventChannel  string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithLLM sets a pre-scripted LLM client.
func WithLLM(llm *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llm = llm }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithTrialCap sets the trial workspace request allowance.
func WithTrialCap(n int) TestAppOption {
	return func(c *testAppConfig) { c.trialCap = n }
}

// WithMaxIterations caps the agent reasoning loop.
func WithMaxIterations(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxIterations = n }
}

// WithTicketTimeout sets the per-ticket execution deadline.
func WithTicketTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.ticketTimeout = d }
}

// WithBreaker tunes the substrate circuit breaker. Outage tests pair a
// low threshold with a long cooldown so the open state is observable.
func WithBreaker(failureThreshold int, cooldown time.Duration, probeBudget int) TestAppOption {
	return func(c *testAppConfig) {
		c.breaker = substrate.BreakerConfig{
			FailureThreshold: failureThreshold,
			Cooldown:         cooldown,
			ProbeBudget:      probeBudget,
		}
	}
}

// WithRetryAttempts sets how many attempts the substrate client makes per
// call. One attempt makes fake hit counts line up with client calls.
func WithRetryAttempts(n int) TestAppOption {
	return func(c *testAppConfig) { c.retryAttempts = n }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Multi-replica tests need
// distinct identities for claiming and event origin filtering.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// WithEventChannel pins the NOTIFY channel name. Replicas that should see
// each other's events must share one; everything else gets a unique
// channel so parallel tests on the shared container stay isolated.
func WithEventChannel(name string) TestAppOption {
	return func(c *testAppConfig) { c.eventChannel = name }
}

// NewTestApp creates and starts a full platform test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{
		workerCount:   1,
		trialCap:      100,
		maxIterations: 10,
		ticketTimeout: 30 * time.Second,
		breaker:       substrate.DefaultBreakerConfig(),
		retryAttempts: 2,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.llm == nil {
		tc.llm = NewScriptedLLMClient()
	}
	if tc.podID == "" {
		tc.podID = fmt.Sprintf("e2e-%s", t.Name())
	}
	if tc.eventChannel == "" {
		tc.eventChannel = randomChannelName(t)
	}

	// 1. Database — per-test schema unless a shared client is injected.
	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Substrate fake and the real client pointed at it. Millisecond
	//    retry backoff keeps injected-failure tests fast.
	fake := NewSubstrateFake(t)
	subClient := substrate.NewClient(substrate.Config{
		BaseURL:       fake.URL(),
		ServiceSecret: "e2e-substrate-secret",
		Timeout:       5 * time.Second,
		Breaker:       tc.breaker,
		Retry: substrate.RetryConfig{
			MaxAttempts: tc.retryAttempts,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
	})

	// 3. Config with queue tuning suited to short-lived tests.
	qcfg := config.DefaultQueueConfig()
	qcfg.WorkerCount = tc.workerCount
	qcfg.MaxConcurrentTickets = tc.workerCount
	qcfg.PollInterval = 100 * time.Millisecond
	qcfg.PollIntervalJitter = 50 * time.Millisecond
	qcfg.TicketTimeout = tc.ticketTimeout
	qcfg.HeartbeatInterval = 5 * time.Second
	qcfg.GracefulShutdownTimeout = 10 * time.Second
	qcfg.OrphanDetectionInterval = time.Minute
	qcfg.OrphanThreshold = time.Minute

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", PublicURL: "http://platform.test"},
		Auth: config.AuthConfig{
			JWTSecret:      e2eJWTSecret,
			ServiceRoleKey: e2eServiceKey,
		},
		Substrate: config.SubstrateConfig{
			BaseURL:          fake.URL(),
			ServiceSecret:    "e2e-substrate-secret",
			Timeout:          5 * time.Second,
			FailureThreshold: tc.breaker.FailureThreshold,
			Cooldown:         tc.breaker.Cooldown,
			HalfOpenProbes:   tc.breaker.ProbeBudget,
		},
		LLM:       config.LLMConfig{APIKey: "e2e-test-key", Model: "claude-sonnet-4-5", MaxTokens: 1024},
		Agent:     config.AgentConfig{MaxIterations: tc.maxIterations, IterationTimeout: 10 * time.Second},
		Quota:     config.QuotaConfig{TrialRequestCap: tc.trialCap},
		Queue:     qcfg,
		Retention: config.DefaultRetentionConfig(),
	}

	// 4. Streaming infrastructure — real publisher and NOTIFY listener on
	//    a dedicated channel. The listener connection must not pin a
	//    search_path, so it uses the base connection string.
	hub := progress.NewHub()
	eventStore := events.NewStore(entClient)
	warnings := services.NewSystemWarningsService()
	publisher := events.NewPublisher(dbClient.DB(), tc.eventChannel, tc.podID)
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), tc.eventChannel, tc.podID, hub, eventStore, warnings, nil)
	ctx := context.Background()
	require.NoError(t, listener.Start(ctx))
	broadcaster := events.NewBroadcaster(hub, publisher, nil)

	// 5. Domain services.
	tickets := services.NewTicketService(entClient)
	recorder := services.NewWorkRequestRecorder(entClient)
	registry := services.NewSessionRegistry(entClient)
	projects := services.NewProjectService(entClient)
	gate := services.NewQuotaGate(entClient, tc.trialCap)
	admission := services.NewAdmissionService(gate, recorder, registry, tickets)
	scaffolder := services.NewScaffolder(subClient, gate, recorder, registry, projects)
	bridge := services.NewSupervisionBridge(subClient, projects, nil)

	// 6. Executor over the scripted LLM, with the built-in tool catalog.
	executor := queue.NewExecutor(queue.ExecutorDeps{
		Sessions:    registry,
		Requests:    recorder,
		Projects:    projects,
		Substrate:   subClient,
		LLM:         tc.llm,
		Broadcaster: broadcaster,
		Masker:      masking.NewService(nil),
		Admitter:    admission,
	}, queue.ExecutorConfig{
		Model:            cfg.LLM.Model,
		MaxTokens:        int64(cfg.LLM.MaxTokens),
		MaxIterations:    cfg.Agent.MaxIterations,
		IterationTimeout: cfg.Agent.IterationTimeout,
	})

	// 7. Worker pool and inline runner.
	deps := queue.Deps{
		Client:      entClient,
		Tickets:     tickets,
		Requests:    recorder,
		Sessions:    registry,
		Broadcaster: broadcaster,
		Warnings:    warnings,
	}
	pool := queue.NewWorkerPool(tc.podID, deps, qcfg, executor)
	require.NoError(t, pool.Start(ctx))
	inline := queue.NewInlineRunner(tc.podID, deps, qcfg, executor)

	// 8. HTTP server over httptest.
	srv := api.NewServer(cfg, api.ServerDeps{
		DB:         dbClient,
		Scaffolder: scaffolder,
		Admission:  admission,
		Bridge:     bridge,
		Tickets:    tickets,
		Inline:     inline,
		Pool:       pool,
		Hub:        hub,
		EventStore: eventStore,
		Warnings:   warnings,
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	app := &TestApp{
		Config:          cfg,
		DBClient:        dbClient,
		EntClient:       entClient,
		LLM:             tc.llm,
		Substrate:       fake,
		SubstrateClient: subClient,
		Hub:             hub,
		EventStore:      eventStore,
		Broadcaster:     broadcaster,
		WorkerPool:      pool,
		Tickets:         tickets,
		Requests:        recorder,
		Registry:        registry,
		Projects:        projects,
		BaseURL:         ts.URL,
		PodID:           tc.podID,
		ts:              ts,
		t:               t,
	}

	// Registered last, so it runs first: stop workers before the HTTP
	// server and database go away.
	t.Cleanup(func() {
		pool.Stop()
		listener.Stop()
	})

	return app
}

// randomChannelName builds a unique, identifier-safe NOTIFY channel name.
func randomChannelName(t *testing.T) string {
	raw := make([]byte, 4)
	_, err := rand.Read(raw)
	require.NoError(t, err)
	return "evt_" + hex.EncodeToString(raw)
}
