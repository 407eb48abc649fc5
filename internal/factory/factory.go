package factory

import (
	"errors"
	"io"
	"log/slog"

	"hwidstore/internal/dependencies/clock"
	"hwidstore/internal/services/allowlist"
	"hwidstore/internal/services/auth"
	"hwidstore/internal/services/registry"
	"hwidstore/internal/services/stats"
	"hwidstore/internal/storage"
	filestorage "hwidstore/internal/storage/file"
	"hwidstore/internal/storage/memory"
	redisstorage "hwidstore/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	Registry         *registry.Controller
	AllowlistService *allowlist.Service
	StatsService     *stats.Service
	AuthService      *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds the API and admin secrets
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// FileConfig holds file storage settings (optional when StorageType is "file")
	FileConfig *filestorage.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		fileCfg := filestorage.DefaultConfig()
		if cfg.FileConfig != nil {
			fileCfg = *cfg.FileConfig
		}
		store = filestorage.New(fileCfg)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.AuthConfig), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config) *App {
	return &App{
		Storage:          store,
		Clock:            clk,
		Registry:         registry.NewController(store, clk),
		AllowlistService: allowlist.New(store),
		StatsService:     stats.New(store, clk),
		AuthService:      auth.New(authCfg),
	}
}
