package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/edgeguard/internal/config"
	"github.com/mcoot/edgeguard/internal/dependencies/clock"
	"github.com/mcoot/edgeguard/internal/dependencies/random"
	"github.com/mcoot/edgeguard/internal/services/algo"
	"github.com/mcoot/edgeguard/internal/services/history"
	"github.com/mcoot/edgeguard/internal/storage"
	"github.com/mcoot/edgeguard/internal/storage/memory"
	redisstorage "github.com/mcoot/edgeguard/internal/storage/redis"
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
	Logger *slog.Logger

	// Services
	HistoryService *history.Service
	AlgoService    *algo.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Settings is the resolved configuration
	Settings config.Settings
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Out receives submitted turns (optional, defaults to os.Stdout)
	Out io.Writer
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	var store storage.Storage
	var closers []io.Closer
	storageType := cfg.Settings.Storage.Type
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.Settings.Storage.Redis.URL == "" {
			return nil, errors.New("redis URL required when storage type is redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Settings.Storage.Redis.URL
		if ttl := cfg.Settings.Storage.Redis.TTL; ttl > 0 {
			redisCfg.HistoryTTL = ttl
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be 'memory' or 'redis'", storageType)
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg.Settings.Strategy, out, logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	strategyCfg config.StrategySettings,
	out io.Writer,
	logger *slog.Logger,
) *App {
	historyService := history.New(store, clk, rnd, logger)
	algoService := algo.NewService(historyService, strategyCfg.Options(), out, clk, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		HistoryService: historyService,
		AlgoService:    algoService,
	}
}

// Close releases external connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
