package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/dependencies/clock"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/oracle"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/auth"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/catalog"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/leaderboard"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/suggest"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/team"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage/memory"
	redisstorage "github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage/redis"
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
	Clock   clock.Clock
	Metrics metrics.Metrics
	Oracle  oracle.Oracle

	// Services
	AuthService        *auth.Service
	CatalogService     *catalog.Service
	TeamManager        *team.Manager
	LeaderboardService *leaderboard.Service
	SuggestService     *suggest.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// OracleConfig selects the assistant backend. Without an API key the
	// assistant degrades to a canned reply.
	OracleConfig oracle.Config
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
	m := metrics.NewService()

	var orc oracle.Oracle
	if cfg.OracleConfig.APIKey != "" {
		openaiOracle, err := oracle.NewOpenAI(cfg.OracleConfig, logger)
		if err != nil {
			return nil, err
		}
		orc = openaiOracle
	} else {
		logger.Warn("no OpenAI API key configured, assistant replies are canned")
		orc = &oracle.Static{
			Reply: "I'm sorry, I couldn't process your request at the moment. Please try again later.",
		}
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, m, orc, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, m metrics.Metrics, orc oracle.Oracle, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	authService := auth.New(store, clk, m, authCfg, logger)
	catalogService := catalog.New(store, logger)
	teamManager := team.New(store, m, logger)
	leaderboardService := leaderboard.New(store, logger)
	suggestService := suggest.New(store, teamManager, orc, m, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Metrics:            m,
		Oracle:             orc,
		AuthService:        authService,
		CatalogService:     catalogService,
		TeamManager:        teamManager,
		LeaderboardService: leaderboardService,
		SuggestService:     suggestService,
	}
}
