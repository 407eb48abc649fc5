package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"hwidstore/internal/api/handler"
	apimiddleware "hwidstore/internal/api/middleware"
	"hwidstore/internal/dependencies/clock"
	"hwidstore/internal/middleware"
	"hwidstore/internal/services/allowlist"
	"hwidstore/internal/services/auth"
	"hwidstore/internal/services/registry"
	"hwidstore/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	Registry         *registry.Controller
	AllowlistService *allowlist.Service
	StatsService     *stats.Service
	Clock            clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	hwidHandler := handler.NewHwidHandler(cfg.Registry)
	statsHandler := handler.NewStatsHandler(cfg.StatsService, cfg.Clock)
	allowlistHandler := handler.NewAllowlistHandler(cfg.AllowlistService, cfg.AuthService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Flat-model routes (verify is open; manage carries its key in the body)
	api.HandleFunc("/verify", allowlistHandler.Verify).Methods(http.MethodPost)
	api.HandleFunc("/manage", allowlistHandler.Manage).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Registry routes (all require the bearer token)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/hwid", hwidHandler.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/hwid", hwidHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/hwid/check/{hwid}", hwidHandler.Check).Methods(http.MethodGet)
	protected.HandleFunc("/hwid/allow/{hwid}", hwidHandler.Allow).Methods(http.MethodPost)
	protected.HandleFunc("/hwid/disallow/{hwid}", hwidHandler.Disallow).Methods(http.MethodPost)
	protected.HandleFunc("/stats", statsHandler.Get).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
