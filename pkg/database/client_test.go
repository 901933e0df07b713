package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobbleworks/foundry/ent/workrequest"
	"github.com/cobbleworks/foundry/pkg/database"
	testdb "github.com/cobbleworks/foundry/test/database"
)

func TestClient_HealthAndPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.Pool.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.LatencyMS, int64(0))
	assert.Less(t, health.LatencyMS, int64(1000), "local ping should be well under a second")
}

func TestClient_WorkRequestRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	id := uuid.New().String()
	created, err := client.WorkRequest.Create().
		SetID(id).
		SetUserID("user-1").
		SetWorkspaceID("ws-1").
		SetBasketID("basket-1").
		SetAgentKind(workrequest.AgentKindResearch).
		SetWorkMode("deep_dive").
		SetPayload(map[string]interface{}{"topic": "pricing"}).
		SetIsTrial(true).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, workrequest.StatusPending, created.Status)

	fetched, err := client.WorkRequest.Query().
		Where(workrequest.ID(id)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pricing", fetched.Payload["topic"])
	assert.True(t, fetched.IsTrial)
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(t *testing.T, cfg database.Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg database.Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "foundry", cfg.User)
				assert.Equal(t, "foundry", cfg.Database)
				assert.Equal(t, "disable", cfg.SSLMode)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg database.Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
			},
		},
		{
			name: "DATABASE_URL wins over parts",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://u:p@h:5432/d",
				"DB_HOST":      "ignored.example.com",
			},
			check: func(t *testing.T, cfg database.Config) {
				assert.Equal(t, "postgres://u:p@h:5432/d", cfg.DSN())
			},
		},
		{
			name:    "invalid DB_PORT",
			envVars: map[string]string{"DB_PORT": "not_a_number"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}

			cfg, err := database.LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := database.Config{
		Host:     "localhost",
		Port:     5432,
		User:     "foundry",
		Password: "pw",
		Database: "foundry",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=foundry password=pw dbname=foundry sslmode=disable",
		cfg.DSN())

	cfg.URL = "postgres://direct"
	assert.Equal(t, "postgres://direct", cfg.DSN())
}
