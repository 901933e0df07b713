package config

import (
	"fmt"
	"time"
)

// Config is the resolved runtime configuration for the whole platform.
// Every field comes from environment variables with built-in defaults;
// there are no config files.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Substrate SubstrateConfig
	LLM       LLMConfig
	Agent     AgentConfig
	Quota     QuotaConfig
	Slack     SlackConfig
	Queue     *QueueConfig
	Retention *RetentionConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port the API listens on.
	Port string

	// PublicURL is the externally reachable base URL of this service,
	// used to build ticket stream URLs returned to callers.
	PublicURL string
}

// AuthConfig holds inbound authentication settings. JWTSecret verifies
// user tokens (HS256); ServiceRoleKey authenticates trusted
// service-to-service callers.
type AuthConfig struct {
	SupabaseURL    string
	JWTSecret      string
	ServiceRoleKey string
}

// SubstrateConfig holds settings for the knowledge-substrate HTTP client,
// including its circuit breaker tuning.
type SubstrateConfig struct {
	BaseURL       string
	ServiceSecret string
	Timeout       time.Duration

	// Circuit breaker: consecutive failures that open the circuit, how
	// long it stays open, and how many probes half-open admits.
	FailureThreshold int
	Cooldown         time.Duration
	HalfOpenProbes   int
}

// LLMConfig holds the provider client settings.
type LLMConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// AgentConfig holds agent runtime settings.
type AgentConfig struct {
	// MaxIterations bounds the reasoning loop of a single run.
	MaxIterations int

	// IterationTimeout bounds a single LLM call inside the loop.
	IterationTimeout time.Duration
}

// QuotaConfig holds workspace quota settings.
type QuotaConfig struct {
	// TrialRequestCap is the maximum number of live (completed or
	// running) work requests a trial workspace may hold.
	TrialRequestCap int
}

// SlackConfig holds reviewer notification settings. Notifications are
// disabled when BotToken or ChannelID is empty.
type SlackConfig struct {
	BotToken     string
	ChannelID    string
	DashboardURL string
}

// Load resolves the full configuration from the environment.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8790"),
			PublicURL: getEnvOrDefault("WORK_PLATFORM_URL", "http://localhost:8790"),
		},
		Auth: AuthConfig{
			SupabaseURL:    getEnvOrDefault("SUPABASE_URL", ""),
			JWTSecret:      getEnvOrDefault("SUPABASE_JWT_SECRET", ""),
			ServiceRoleKey: getEnvOrDefault("SUPABASE_SERVICE_ROLE_KEY", ""),
		},
		Substrate: SubstrateConfig{
			BaseURL:          getEnvOrDefault("SUBSTRATE_API_URL", "http://localhost:8788"),
			ServiceSecret:    getEnvOrDefault("SUBSTRATE_SERVICE_SECRET", ""),
			Timeout:          envSeconds("SUBSTRATE_TIMEOUT_SECONDS", 30*time.Second),
			FailureThreshold: envInt("CB_FAILURE_THRESHOLD", 5),
			Cooldown:         envSeconds("CB_COOLDOWN_SECONDS", 60*time.Second),
			HalfOpenProbes:   envInt("CB_HALF_OPEN_PROBES", 3),
		},
		LLM: LLMConfig{
			APIKey:    getEnvOrDefault("LLM_PROVIDER_API_KEY", ""),
			Model:     getEnvOrDefault("LLM_MODEL", "claude-sonnet-4-5"),
			MaxTokens: envInt("LLM_MAX_TOKENS", 8192),
		},
		Agent: AgentConfig{
			MaxIterations:    envInt("AGENT_MAX_ITERATIONS", 10),
			IterationTimeout: envSeconds("AGENT_ITERATION_TIMEOUT_SECONDS", 120*time.Second),
		},
		Quota: QuotaConfig{
			TrialRequestCap: envInt("TRIAL_REQUEST_CAP", 10),
		},
		Slack: SlackConfig{
			BotToken:     getEnvOrDefault("SLACK_BOT_TOKEN", ""),
			ChannelID:    getEnvOrDefault("SLACK_CHANNEL_ID", ""),
			DashboardURL: getEnvOrDefault("DASHBOARD_URL", "http://localhost:3000"),
		},
		Queue:     LoadQueueConfig(),
		Retention: LoadRetentionConfig(),
	}
}

// Validate checks settings that have no safe default. Called once at
// startup; a failure is fatal.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_PROVIDER_API_KEY is required")
	}
	if c.Agent.MaxIterations < 1 {
		return fmt.Errorf("AGENT_MAX_ITERATIONS must be at least 1")
	}
	if c.Quota.TrialRequestCap < 0 {
		return fmt.Errorf("TRIAL_REQUEST_CAP must not be negative")
	}
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("QUEUE_WORKER_COUNT must be at least 1")
	}
	return nil
}
