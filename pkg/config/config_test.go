package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8790", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8790", cfg.Server.PublicURL)
	assert.Equal(t, "http://localhost:8788", cfg.Substrate.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Substrate.Timeout)
	assert.Equal(t, 5, cfg.Substrate.FailureThreshold)
	assert.Equal(t, 60*time.Second, cfg.Substrate.Cooldown)
	assert.Equal(t, 3, cfg.Substrate.HalfOpenProbes)
	assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.Model)
	assert.Equal(t, 8192, cfg.LLM.MaxTokens)
	assert.Equal(t, 10, cfg.Agent.MaxIterations)
	assert.Equal(t, 10, cfg.Quota.TrialRequestCap)
	assert.Empty(t, cfg.Slack.BotToken)
	assert.Equal(t, "http://localhost:3000", cfg.Slack.DashboardURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SUBSTRATE_API_URL", "http://substrate.internal:8080")
	t.Setenv("SUBSTRATE_TIMEOUT_SECONDS", "10")
	t.Setenv("CB_FAILURE_THRESHOLD", "2")
	t.Setenv("LLM_MODEL", "claude-haiku-4")
	t.Setenv("AGENT_MAX_ITERATIONS", "3")
	t.Setenv("TRIAL_REQUEST_CAP", "1")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "http://substrate.internal:8080", cfg.Substrate.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Substrate.Timeout)
	assert.Equal(t, 2, cfg.Substrate.FailureThreshold)
	assert.Equal(t, "claude-haiku-4", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.Agent.MaxIterations)
	assert.Equal(t, 1, cfg.Quota.TrialRequestCap)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("AGENT_MAX_ITERATIONS", "many")
	t.Setenv("SUBSTRATE_TIMEOUT_SECONDS", "soon")
	t.Setenv("QUEUE_POLL_INTERVAL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 10, cfg.Agent.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Substrate.Timeout)
	assert.Equal(t, time.Second, cfg.Queue.PollInterval)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Load()
		cfg.Auth.JWTSecret = "secret"
		cfg.LLM.APIKey = "sk-test"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing JWT secret", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.JWTSecret = ""
		assert.ErrorContains(t, cfg.Validate(), "SUPABASE_JWT_SECRET")
	})

	t.Run("missing provider key", func(t *testing.T) {
		cfg := valid()
		cfg.LLM.APIKey = ""
		assert.ErrorContains(t, cfg.Validate(), "LLM_PROVIDER_API_KEY")
	})

	t.Run("zero workers", func(t *testing.T) {
		cfg := valid()
		cfg.Queue.WorkerCount = 0
		assert.ErrorContains(t, cfg.Validate(), "QUEUE_WORKER_COUNT")
	})
}

func TestLoadQueueConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadQueueConfig()
		assert.Equal(t, 5, cfg.WorkerCount)
		assert.Equal(t, time.Second, cfg.PollInterval)
		assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter)
		assert.Equal(t, 15*time.Minute, cfg.TicketTimeout)
		assert.Equal(t, 5*time.Minute, cfg.OrphanThreshold)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("QUEUE_WORKER_COUNT", "2")
		t.Setenv("QUEUE_POLL_INTERVAL", "250ms")
		t.Setenv("TICKET_TIMEOUT", "1m")

		cfg := LoadQueueConfig()
		assert.Equal(t, 2, cfg.WorkerCount)
		assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
		assert.Equal(t, time.Minute, cfg.TicketTimeout)
		// Shutdown grace always tracks the ticket timeout.
		assert.Equal(t, time.Minute, cfg.GracefulShutdownTimeout)
	})
}

func TestLoadRetentionConfig(t *testing.T) {
	t.Setenv("EVENT_RETENTION", "48h")

	cfg := LoadRetentionConfig()
	assert.Equal(t, 48*time.Hour, cfg.EventRetention)
	assert.Equal(t, 12*time.Hour, cfg.CleanupInterval)
	assert.Equal(t, time.Hour, cfg.HubIdleWindow)
}
