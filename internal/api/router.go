package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nahidff/likebot/internal/api/handler"
	"github.com/nahidff/likebot/internal/api/middleware"
	"github.com/nahidff/likebot/internal/bot"
	basemw "github.com/nahidff/likebot/internal/middleware"
	"github.com/nahidff/likebot/internal/services/account"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	BotRouter      *bot.Router
	AccountService *account.Service

	// AdminTokenHash is the bcrypt hash of the admin bearer token.
	// When empty the admin endpoints are not mounted.
	AdminTokenHash string

	// MetricsGatherer serves GET /metrics when set
	MetricsGatherer prometheus.Gatherer
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	commandHandler := handler.NewCommandHandler(cfg.BotRouter)
	adminHandler := handler.NewAdminHandler(cfg.AccountService)

	// Create middleware
	loggingMiddleware := basemw.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	requestIDMiddleware := middleware.RequestID()

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(requestIDMiddleware)
	api.Use(loggingMiddleware)

	// Transport boundary: commands and callback events
	api.HandleFunc("/commands", commandHandler.Dispatch).Methods(http.MethodPost)
	api.HandleFunc("/callbacks", commandHandler.Callback).Methods(http.MethodPost)

	// Admin routes, token-protected
	if cfg.AdminTokenHash != "" {
		admin := api.PathPrefix("/admin").Subrouter()
		admin.Use(middleware.AdminAuth(cfg.AdminTokenHash))
		admin.HandleFunc("/accounts/{id}", adminHandler.GetAccount).Methods(http.MethodGet)
		admin.HandleFunc("/accounts/{id}/vip", adminHandler.SetVIP).Methods(http.MethodPut)
		admin.HandleFunc("/accounts/{id}/credit", adminHandler.Credit).Methods(http.MethodPost)
	}

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus metrics
	if cfg.MetricsGatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.MetricsGatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
