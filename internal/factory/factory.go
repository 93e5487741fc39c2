package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ewhitmore/scorepad-go/internal/api/sse"
	"github.com/ewhitmore/scorepad-go/internal/dependencies/clock"
	"github.com/ewhitmore/scorepad-go/internal/dependencies/random"
	"github.com/ewhitmore/scorepad-go/internal/services/access"
	"github.com/ewhitmore/scorepad-go/internal/services/scoring"
	"github.com/ewhitmore/scorepad-go/internal/services/table"
	"github.com/ewhitmore/scorepad-go/internal/storage"
	"github.com/ewhitmore/scorepad-go/internal/storage/memory"
	redisstorage "github.com/ewhitmore/scorepad-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	ScoringService  *scoring.Service
	TableController *table.Controller
	AccessService   *access.Service
	HubManager      *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// AccessConfig holds configuration for the access service (optional)
	// If zero value, defaults to access.DefaultConfig()
	AccessConfig access.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
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
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
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
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	accessCfg := cfg.AccessConfig
	if accessCfg.TokenDuration == 0 {
		accessCfg = access.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, accessCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, accessCfg access.Config, logger *slog.Logger) *App {
	scoringService := scoring.New()
	tableController := table.NewController(store, clk, rnd, logger)
	accessService := access.New(clk, rnd, accessCfg)
	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		ScoringService:  scoringService,
		TableController: tableController,
		AccessService:   accessService,
		HubManager:      hubManager,
	}
}
