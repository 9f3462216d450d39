package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RouterConfig bundles everything NewRouter needs.
type RouterConfig struct {
	Logger      *slog.Logger
	Health      *HealthHandler
	Reports     *ReportHandler
	Diary       *DiaryHandler
	Tokens      tokenValidator
	CORS        middleware.Middleware
	RateLimiter *middleware.RateLimiter
	// ReportsPerMinute caps report and export calls per caller.
	ReportsPerMinute int
	// Metrics is optional; a nil observer disables request metrics.
	Metrics     httpObserver
	MetricsPath string
	// MetricsHandler serves the Prometheus exposition format at MetricsPath.
	MetricsHandler http.Handler
}

// NewRouter builds the HTTP handler with all routes and middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)
	if cfg.MetricsHandler != nil && cfg.MetricsPath != "" {
		mux.Handle("GET "+cfg.MetricsPath, cfg.MetricsHandler)
	}

	limited := func(h http.HandlerFunc) http.Handler {
		if cfg.RateLimiter == nil {
			return h
		}
		return cfg.RateLimiter.Limit(cfg.ReportsPerMinute)(h)
	}
	owner := func(h http.Handler) http.Handler {
		return middleware.RequireOwner(h)
	}

	mux.Handle("GET /api/v1/report", owner(limited(cfg.Reports.GetReport)))
	mux.Handle("GET /api/v1/export", limited(cfg.Reports.Export))
	mux.Handle("GET /api/v1/exports", owner(http.HandlerFunc(cfg.Reports.ListExports)))
	mux.Handle("GET /api/v1/limits/status", owner(http.HandlerFunc(cfg.Reports.LimitStatuses)))
	mux.Handle("POST /api/v1/session/signout", owner(http.HandlerFunc(cfg.Reports.SignOut)))

	mux.Handle("GET /api/v1/entries", owner(http.HandlerFunc(cfg.Diary.ListEntries)))
	mux.Handle("POST /api/v1/entries", owner(http.HandlerFunc(cfg.Diary.CreateEntry)))
	mux.Handle("DELETE /api/v1/entries/{id}", owner(http.HandlerFunc(cfg.Diary.DeleteEntry)))
	mux.Handle("GET /api/v1/limits", owner(http.HandlerFunc(cfg.Diary.ListLimits)))
	mux.Handle("PUT /api/v1/limits", owner(http.HandlerFunc(cfg.Diary.SaveLimit)))

	var metrics middleware.Middleware
	if cfg.Metrics != nil {
		metrics = middleware.Metrics(cfg.Metrics)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		cfg.CORS,
		middleware.Auth(cfg.Tokens),
		metrics,
	)(mux)
}
