// Foundry work-platform server — provides the HTTP API, manages queue
// workers, and runs agent work over the knowledge substrate.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cobbleworks/foundry/pkg/agent"
	"github.com/cobbleworks/foundry/pkg/api"
	"github.com/cobbleworks/foundry/pkg/cleanup"
	"github.com/cobbleworks/foundry/pkg/config"
	"github.com/cobbleworks/foundry/pkg/database"
	"github.com/cobbleworks/foundry/pkg/events"
	"github.com/cobbleworks/foundry/pkg/masking"
	"github.com/cobbleworks/foundry/pkg/progress"
	"github.com/cobbleworks/foundry/pkg/queue"
	"github.com/cobbleworks/foundry/pkg/services"
	"github.com/cobbleworks/foundry/pkg/slack"
	"github.com/cobbleworks/foundry/pkg/substrate"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Load .env if present; real deployments set the environment directly.
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		slog.Info("No .env file loaded, using existing environment", "path", envFile)
	} else {
		slog.Info("Loaded environment", "path", envFile)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Resolve configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting foundry",
		"port", cfg.Server.Port,
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 2. Initialize database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Substrate client and domain services
	substrateClient := substrate.NewClient(substrate.Config{
		BaseURL:       cfg.Substrate.BaseURL,
		ServiceSecret: cfg.Substrate.ServiceSecret,
		Timeout:       cfg.Substrate.Timeout,
		Breaker: substrate.BreakerConfig{
			FailureThreshold: cfg.Substrate.FailureThreshold,
			Cooldown:         cfg.Substrate.Cooldown,
			ProbeBudget:      cfg.Substrate.HalfOpenProbes,
		},
		Retry: substrate.DefaultRetryConfig(),
	})

	tickets := services.NewTicketService(dbClient.Client)
	recorder := services.NewWorkRequestRecorder(dbClient.Client)
	registry := services.NewSessionRegistry(dbClient.Client)
	projects := services.NewProjectService(dbClient.Client)
	gate := services.NewQuotaGate(dbClient.Client, cfg.Quota.TrialRequestCap)
	admission := services.NewAdmissionService(gate, recorder, registry, tickets)
	scaffolder := services.NewScaffolder(substrateClient, gate, recorder, registry, projects)
	notifier := slack.NewService(slack.ServiceConfig{
		Token:        cfg.Slack.BotToken,
		Channel:      cfg.Slack.ChannelID,
		DashboardURL: cfg.Slack.DashboardURL,
	})
	if notifier != nil {
		slog.Info("Reviewer notifications enabled", "channel", cfg.Slack.ChannelID)
	}
	bridge := services.NewSupervisionBridge(substrateClient, projects, notifier)
	warnings := services.NewSystemWarningsService()
	maskingService := masking.NewService(nil)
	slog.Info("Services initialized")

	// 4. LLM provider client
	llmClient, err := agent.NewAnthropicClient(cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "model", cfg.LLM.Model)

	// 5. Streaming infrastructure: local hub, durable trail, and the
	// cross-replica NOTIFY fan-out.
	hub := progress.NewHub()
	eventStore := events.NewStore(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB(), events.DefaultChannel, podID)

	listener := events.NewNotifyListener(dbConfig.DSN(), events.DefaultChannel, podID, hub, eventStore, warnings, nil)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop()

	broadcaster := events.NewBroadcaster(hub, publisher, nil)
	slog.Info("Streaming infrastructure initialized")

	deps := queue.Deps{
		Client:      dbClient.Client,
		Tickets:     tickets,
		Requests:    recorder,
		Sessions:    registry,
		Broadcaster: broadcaster,
		Warnings:    warnings,
		Notifier:    notifier,
	}

	// 6. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, deps, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 7. Executor, worker pool, and the synchronous runner
	executor := queue.NewExecutor(queue.ExecutorDeps{
		Sessions:    registry,
		Requests:    recorder,
		Projects:    projects,
		Substrate:   substrateClient,
		LLM:         llmClient,
		Broadcaster: broadcaster,
		Masker:      maskingService,
		Admitter:    admission,
	}, queue.ExecutorConfig{
		Model:            cfg.LLM.Model,
		MaxTokens:        int64(cfg.LLM.MaxTokens),
		MaxIterations:    cfg.Agent.MaxIterations,
		IterationTimeout: cfg.Agent.IterationTimeout,
	})

	pool := queue.NewWorkerPool(podID, deps, cfg.Queue, executor)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	inline := queue.NewInlineRunner(podID, deps, cfg.Queue, executor)

	// 8. Event retention sweeper
	sweeper := cleanup.NewService(cfg.Retention, eventStore, hub)
	sweeper.Start(ctx)

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, api.ServerDeps{
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

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Foundry started successfully", "pod_id", podID)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers first so running tickets finish
	// or fail cleanly, then stop the ancillary loops, then the listener.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete tickets will be orphan-recovered")
	}

	sweeper.Stop()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
