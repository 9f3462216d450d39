package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/paindiary-backend/internal/adapter/postgres/audit"
	eventrepo "github.com/heartmarshall/paindiary-backend/internal/adapter/postgres/event"
	limitrepo "github.com/heartmarshall/paindiary-backend/internal/adapter/postgres/limit"
	userrepo "github.com/heartmarshall/paindiary-backend/internal/adapter/postgres/user"
	weatherrepo "github.com/heartmarshall/paindiary-backend/internal/adapter/postgres/weather"
	"github.com/heartmarshall/paindiary-backend/internal/auth"
	"github.com/heartmarshall/paindiary-backend/internal/config"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/monitoring"
	"github.com/heartmarshall/paindiary-backend/internal/service/diary"
	"github.com/heartmarshall/paindiary-backend/internal/service/report"
	"github.com/heartmarshall/paindiary-backend/internal/transport/middleware"
	"github.com/heartmarshall/paindiary-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to the
// database, wires repositories, services and handlers, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("report_timezone", cfg.Report.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	metrics := monitoring.NewMetrics()

	reportSvc, cache, err := NewReportService(logger, pool, cfg.Report, metrics)
	if err != nil {
		return err
	}

	events := eventrepo.New(pool)
	users := userrepo.New(pool)
	diarySvc := diary.NewService(
		logger,
		events,
		users,
		limitrepo.New(pool),
		postgres.NewTxManager(pool),
		cache,
		metrics,
		diary.Options{
			MaxEntriesPerUser: cfg.Diary.MaxEntriesPerUser,
			DefaultPageSize:   cfg.Diary.DefaultPageSize,
		},
	)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	routerCfg := rest.RouterConfig{
		Logger:           logger,
		Health:           rest.NewHealthHandler(pool, cache, BuildVersion()),
		Reports:          rest.NewReportHandler(reportSvc, logger),
		Diary:            rest.NewDiaryHandler(diarySvc, logger),
		Tokens:           auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		CORS:             middleware.CORS(cfg.CORS),
		RateLimiter:      rateLimiter,
		ReportsPerMinute: cfg.RateLimit.ReportsPerMinute,
		Metrics:          metrics,
	}
	if cfg.Metrics.Enabled {
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.MetricsHandler = metrics.Handler()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(routerCfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewReportService wires the report service and its tracking-start cache on
// top of pool. It is shared by the HTTP server and the report CLI.
func NewReportService(
	logger *slog.Logger,
	pool postgres.Querier,
	cfg config.ReportConfig,
	metrics *monitoring.Metrics,
) (*report.Service, *report.TrackingStartCache, error) {
	cache, err := report.NewTrackingStartCache(cfg.TrackingCacheSize, metrics)
	if err != nil {
		return nil, nil, fmt.Errorf("tracking cache: %w", err)
	}

	svc := report.NewService(
		logger,
		eventrepo.New(pool),
		userrepo.New(pool),
		limitrepo.New(pool),
		weatherrepo.New(pool),
		auditrepo.New(pool),
		cache,
		metrics,
		report.Options{
			Location:      cfg.ReferenceLocation(),
			IncludeToday:  cfg.IncludeToday,
			DefaultPreset: domain.Preset(cfg.DefaultPreset),
			MaxWindowDays: cfg.MaxCustomDays,
		},
	)
	return svc, cache, nil
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err, ok := <-errCh; ok {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
