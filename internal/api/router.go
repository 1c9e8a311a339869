package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/handler"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/api/middleware"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/auth"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/catalog"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/leaderboard"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/suggest"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/team"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Metrics            metrics.Metrics
	AuthService        *auth.Service
	CatalogService     *catalog.Service
	TeamManager        *team.Manager
	LeaderboardService *leaderboard.Service
	SuggestService     *suggest.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	playerHandler := handler.NewPlayerHandler(cfg.CatalogService)
	adminHandler := handler.NewAdminHandler(cfg.CatalogService)
	teamHandler := handler.NewTeamHandler(cfg.TeamManager)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	chatbotHandler := handler.NewChatbotHandler(cfg.SuggestService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.RequireAdmin()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics(cfg.Metrics)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(metricsMiddleware)

	// Auth routes (no session required for registering/logging in)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/username-available", authHandler.UsernameAvailable).Methods(http.MethodGet)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Catalog routes (all require auth)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)

	// Admin routes (require auth and the admin role)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/players", adminHandler.ListPlayers).Methods(http.MethodGet)
	admin.HandleFunc("/players", adminHandler.CreatePlayer).Methods(http.MethodPost)
	admin.HandleFunc("/players/{id}", adminHandler.UpdatePlayer).Methods(http.MethodPatch)
	admin.HandleFunc("/players/{id}", adminHandler.DeletePlayer).Methods(http.MethodDelete)
	admin.HandleFunc("/summary", adminHandler.Summary).Methods(http.MethodGet)

	// Team routes (all require auth)
	teamRoutes := api.PathPrefix("/team").Subrouter()
	teamRoutes.Use(authMiddleware)
	teamRoutes.HandleFunc("", teamHandler.Get).Methods(http.MethodGet)
	teamRoutes.HandleFunc("/players", teamHandler.AddPlayer).Methods(http.MethodPost)
	teamRoutes.HandleFunc("/players/{id}", teamHandler.RemovePlayer).Methods(http.MethodDelete)

	// Remaining protected reads
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/budget", teamHandler.Budget).Methods(http.MethodGet)
	protected.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/chatbot", chatbotHandler.Ask).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus scrape endpoint, outside the API prefix
	r.Handle("/metrics", metrics.NewMetricsHandler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
