package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nahidff/likebot/internal/bot"
	"github.com/nahidff/likebot/internal/dependencies/clock"
	"github.com/nahidff/likebot/internal/dependencies/random"
	"github.com/nahidff/likebot/internal/metrics"
	"github.com/nahidff/likebot/internal/services/account"
	"github.com/nahidff/likebot/internal/services/entitlement"
	"github.com/nahidff/likebot/internal/services/leaderboard"
	"github.com/nahidff/likebot/internal/services/verification"
	"github.com/nahidff/likebot/internal/storage"
	"github.com/nahidff/likebot/internal/storage/memory"
	redisstorage "github.com/nahidff/likebot/internal/storage/redis"
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
	AccountService      *account.Service
	Gate                *entitlement.Service
	VerificationService *verification.Service
	Leaderboard         leaderboard.Provider
	PassBoard           leaderboard.PassProvider

	// Bot command router
	BotRouter *bot.Router

	// Observability
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// VerificationConfig holds verification flow settings (optional)
	VerificationConfig verification.Config
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

	return newWithDependencies(store, clk, rnd, cfg.VerificationConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	verifyCfg verification.Config,
	logger *slog.Logger,
) *App {
	// Create services
	accountService := account.New(store, clk)
	gate := entitlement.New(accountService)
	verificationService := verification.New(accountService, verifyCfg)
	boards := leaderboard.DefaultStaticProvider()
	passBoards := leaderboard.DefaultStaticPassProvider()

	// Observability: a per-app registry so test instances don't collide
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry, func() float64 {
		n, err := accountService.Count(context.Background())
		if err != nil {
			return 0
		}
		return float64(n)
	})

	botRouter := bot.NewRouter(bot.Config{
		Accounts:     accountService,
		Gate:         gate,
		Verification: verificationService,
		Leaderboard:  boards,
		PassBoard:    passBoards,
		Random:       rnd,
		Logger:       logger,
		Metrics:      m,
	})

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		AccountService:      accountService,
		Gate:                gate,
		VerificationService: verificationService,
		Leaderboard:         boards,
		PassBoard:           passBoards,
		BotRouter:           botRouter,
		Metrics:             m,
		Registry:            registry,
	}
}
