package container

import (
	"context"
	"testing"
	"time"

	"lines-be/internal/config"
	"lines-be/internal/repository"
	"lines-be/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "development",
		StorageBackend:  config.BackendMemory,
		InstallationID:  "inst-test",
		SeedUserState:   true,
		ViewerCountry:   "us",
		DefaultPageSize: 8,
	}
}

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name        string
		mutate      func(cfg *config.Config)
		wantBackend string
		expectRedis bool
	}{
		{
			name:        "memory backend",
			mutate:      func(cfg *config.Config) {},
			wantBackend: config.BackendMemory,
		},
		{
			name: "redis backend",
			mutate: func(cfg *config.Config) {
				cfg.StorageBackend = config.BackendRedis
				cfg.RedisURL = "redis://" + mr.Addr() + "/0"
			},
			wantBackend: config.BackendRedis,
			expectRedis: true,
		},
		{
			name: "unreachable redis falls back to memory",
			mutate: func(cfg *config.Config) {
				cfg.StorageBackend = config.BackendRedis
				cfg.RedisURL = "invalid://redis-url"
			},
			wantBackend: config.BackendMemory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			c, err := New(context.Background(), cfg, logger.NewNop())
			require.NoError(t, err)
			require.NotNil(t, c)
			defer c.Close()

			assert.Equal(t, tt.wantBackend, c.Backend)
			assert.Equal(t, tt.expectRedis, c.HasRedis())
			assert.NotNil(t, c.GetVideoService())
			assert.NotNil(t, c.GetSuggestionService())
			assert.NotNil(t, c.GetUserStateService())
			assert.NotNil(t, c.GetCommentService())
			assert.NotNil(t, c.GetRequestTracker())
			assert.Equal(t, 50, c.Catalog.Len())
			assert.NoError(t, c.StorageHealth(context.Background()))
		})
	}
}

func TestNew_RedisRehydratesUserState(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.StorageBackend = config.BackendRedis
	cfg.RedisURL = "redis://" + mr.Addr() + "/0"

	first, err := New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	first.GetUserStateService().AddToHistory(context.Background(), "10")
	require.NoError(t, first.Close())

	assert.True(t, mr.Exists("staging:lines:state:inst-test:"+repository.KeyWatchHistory))

	second, err := New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer second.Close()

	history := second.GetUserStateService().History()
	require.NotEmpty(t, history)
	assert.Equal(t, "10", history[0].ID)
}

func TestEngineConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SimulateLatency = true
	cfg.QueryLatency = 10 * time.Millisecond
	cfg.LookupLatency = 20 * time.Millisecond
	cfg.SuggestLatency = 30 * time.Millisecond
	cfg.ViewerCountry = "jp"

	engine := EngineConfig(cfg)
	assert.Equal(t, 10*time.Millisecond, engine.QueryLatency)
	assert.Equal(t, 20*time.Millisecond, engine.LookupLatency)
	assert.Equal(t, 30*time.Millisecond, engine.SuggestLatency)
	assert.Equal(t, "jp", engine.ViewerCountry)

	cfg.SimulateLatency = false
	engine = EngineConfig(cfg)
	assert.Zero(t, engine.QueryLatency)
	assert.Zero(t, engine.LookupLatency)
	assert.Zero(t, engine.SuggestLatency)
}
