package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/treasury/internal/adapter/http/handler"
	"github.com/iho/treasury/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccrualHandler *handler.AccrualHandler
	ReportHandler  *handler.ReportHandler
	AdvanceHandler *handler.AdvanceHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Accrual runs
		r.Route("/accruals", func(r chi.Router) {
			r.Post("/advances/run", cfg.AccrualHandler.RunAdvances)
			r.Post("/loans/run", cfg.AccrualHandler.RunLoans)
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/css/{id}/margin", cfg.ReportHandler.Margin)
			r.Get("/liquidity", cfg.ReportHandler.Liquidity)
		})

		// Advances
		r.Get("/advances/{id}/interest", cfg.AdvanceHandler.ListInterest)
	})

	return r
}
