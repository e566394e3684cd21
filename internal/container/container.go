package container

import (
	"context"
	"fmt"
	"time"

	"lines-be/internal/catalog"
	"lines-be/internal/config"
	"lines-be/internal/repository"
	"lines-be/internal/service"
	"lines-be/pkg/database"
	"lines-be/pkg/logger"
	"lines-be/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
	DB          *database.PostgresDB
	Catalog     *catalog.Catalog
	StateRepo   repository.StateRepository
	Services    *service.Services
	// Backend is the storage backend actually in use, which may differ from
	// the configured one after a Redis fallback
	Backend string
}

// New creates a new dependency injection container
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*Container, error) {
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Backend: config.BackendMemory,
	}

	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}

	c.Catalog = catalog.NewSeeded(time.Now())
	engine := EngineConfig(cfg)

	userState := service.NewUserStateService(c.Catalog, c.StateRepo, logger, cfg.SeedUserState)
	userState.Load(ctx)

	c.Services = &service.Services{
		Videos:      service.NewVideoService(c.Catalog, engine, logger),
		Suggestions: service.NewSuggestionService(c.Catalog, engine, logger),
		UserState:   userState,
		Comments:    service.NewCommentService(c.Catalog, logger, time.Now),
		Requests:    service.NewRequestTracker(),
	}

	logger.WithFields(map[string]interface{}{
		"backend":      c.Backend,
		"installation": cfg.InstallationID,
		"videos":       c.Catalog.Len(),
	}).Info("Container initialized")

	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.StorageBackend {
	case config.BackendRedis:
		client, err := redis.NewClient(c.Config.RedisURL, c.Config.Environment, c.Logger.Named("redis").Logger)
		if err != nil {
			c.Logger.WithError(err).Warn("Failed to initialize Redis client, proceeding with in-memory user state")
			c.StateRepo = repository.NewMemoryStateRepository()
			return nil
		}
		c.RedisClient = client
		c.StateRepo = repository.NewRedisStateRepository(client, c.Config.InstallationID)
		c.Backend = config.BackendRedis
		c.Logger.Info("Redis client initialized successfully")

	case config.BackendPostgres:
		db, err := database.NewPostgresDB(ctx, c.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return err
		}
		c.DB = db
		c.StateRepo = repository.NewPostgresStateRepository(db, c.Config.InstallationID)
		c.Backend = config.BackendPostgres
		c.Logger.Info("Database connection established")

	default:
		c.StateRepo = repository.NewMemoryStateRepository()
	}
	return nil
}

// EngineConfig derives the engine tunables from configuration
func EngineConfig(cfg *config.Config) service.EngineConfig {
	engine := service.DefaultEngineConfig()
	engine.ViewerCountry = cfg.ViewerCountry
	engine.DefaultPageSize = cfg.DefaultPageSize

	if cfg.SimulateLatency {
		engine.QueryLatency = cfg.QueryLatency
		engine.LookupLatency = cfg.LookupLatency
		engine.SuggestLatency = cfg.SuggestLatency
	} else {
		engine.QueryLatency = 0
		engine.LookupLatency = 0
		engine.SuggestLatency = 0
	}
	return engine
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetVideoService returns the video service
func (c *Container) GetVideoService() service.VideoService {
	return c.Services.Videos
}

// GetSuggestionService returns the suggestion service
func (c *Container) GetSuggestionService() service.SuggestionService {
	return c.Services.Suggestions
}

// GetUserStateService returns the user state store
func (c *Container) GetUserStateService() *service.UserStateService {
	return c.Services.UserState
}

// GetCommentService returns the comment service
func (c *Container) GetCommentService() *service.CommentService {
	return c.Services.Comments
}

// GetRequestTracker returns the request sequencing tracker
func (c *Container) GetRequestTracker() *service.RequestTracker {
	return c.Services.Requests
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}

// StorageHealth pings the active storage backend
func (c *Container) StorageHealth(ctx context.Context) error {
	switch {
	case c.RedisClient != nil:
		return c.RedisClient.Health(ctx)
	case c.DB != nil:
		return c.DB.Health(ctx)
	default:
		return nil
	}
}

// Close releases storage connections
func (c *Container) Close() error {
	var firstErr error
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.WithError(err).Error("Failed to close Redis connection")
			firstErr = err
		} else {
			c.Logger.Info("Redis connection closed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
		c.Logger.Info("Database connection closed")
	}
	return firstErr
}
