package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/config"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/factory"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/oracle"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/auth"
	redisstorage "github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage/redis"
)

func main() {
	// Local development overrides; absence is not an error
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		AuthConfig:  auth.Config{SessionDuration: cfg.SessionDuration},
		OracleConfig: oracle.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		},
	}

	// Configure Redis if storage type is redis
	if factoryCfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.SessionTTL = cfg.SessionDuration
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Bootstrap the admin account
	if cfg.AdminPassword != "" {
		if err := app.AuthService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
			logger.Error("failed to ensure admin account", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Warn("no admin password configured, skipping admin bootstrap")
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		Metrics:            app.Metrics,
		AuthService:        app.AuthService,
		CatalogService:     app.CatalogService,
		TeamManager:        app.TeamManager,
		LeaderboardService: app.LeaderboardService,
		SuggestService:     app.SuggestService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
