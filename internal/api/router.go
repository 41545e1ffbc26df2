package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/aerogest/backoffice/pkg/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler         *LedgerHandler
	ImportHandler         *ImportHandler
	AnalyticsHandler      *AnalyticsHandler
	ReconciliationHandler *ReconciliationHandler
	HealthHandler         *HealthHandler
	Metrics               *metrics.Metrics
	AllowedOrigins        []string
}

// NewRouter creates the HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(metricsMiddleware(cfg.Metrics))
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Get("/", cfg.LedgerHandler.List)
			r.Post("/", cfg.LedgerHandler.Create)
			r.Get("/export", cfg.LedgerHandler.Export)
			r.Get("/{id}", cfg.LedgerHandler.Get)
			r.Put("/{id}", cfg.LedgerHandler.Update)
			r.Delete("/{id}", cfg.LedgerHandler.Delete)
		})

		r.Route("/imports", func(r chi.Router) {
			r.Post("/", cfg.ImportHandler.Upload)
			r.Post("/analyze", cfg.ImportHandler.Analyze)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/monthly", cfg.AnalyticsHandler.MonthlySpend)
			r.Get("/weekly", cfg.AnalyticsHandler.WeeklySpend)
			r.Get("/rolling", cfg.AnalyticsHandler.RollingSpend)
			r.Get("/deltas", cfg.AnalyticsHandler.MonthlyDeltas)
			r.Get("/fleet", cfg.AnalyticsHandler.Fleet)
			r.Get("/cost-centers", cfg.AnalyticsHandler.CostCenters)
		})

		r.Get("/reconciliation", cfg.ReconciliationHandler.Report)
	})

	return r
}
