// Package report builds diary reports, clinician exports and limit banners
// from stored events. It owns the reference clock and timezone; everything
// computed here goes through the analytics package.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/analytics"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/pkg/ctxutil"
)

// eventRepo defines the event repository interface needed by report service.
type eventRepo interface {
	ListByWindow(ctx context.Context, userID uuid.UUID, window domain.Window) ([]domain.HealthEvent, error)
	EarliestDate(ctx context.Context, userID uuid.UUID) (*civil.Date, error)
}

// settingsRepo defines the settings repository interface needed by report service.
type settingsRepo interface {
	GetTrackingStart(ctx context.Context, userID uuid.UUID) (*civil.Date, error)
}

// limitRepo defines the limit repository interface needed by report service.
type limitRepo interface {
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error)
}

// weatherRepo defines the weather repository interface needed by report service.
type weatherRepo interface {
	Summary(ctx context.Context, userID uuid.UUID, window domain.Window) (*domain.WeatherSummary, error)
}

// auditRepo stores the disclosure log of clinician exports.
type auditRepo interface {
	Log(ctx context.Context, rec domain.ExportRecord) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ExportRecord, error)
}

// metricsRecorder receives report build and limit evaluation outcomes.
type metricsRecorder interface {
	ObserveReport(kind string, d time.Duration, calendarDays int, overuse bool, err error)
	LimitEvaluated(status string)
}

// Options configures the reference clock of the service.
type Options struct {
	Location      *time.Location
	IncludeToday  bool
	DefaultPreset domain.Preset
	// MaxWindowDays caps custom and "all" windows. Defaults to
	// DefaultMaxWindowDays.
	MaxWindowDays int
	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultMaxWindowDays is the longest window a report covers unless
// configured otherwise.
const DefaultMaxWindowDays = 3660

// Service implements report, export and limit status operations.
type Service struct {
	log      *slog.Logger
	events   eventRepo
	settings settingsRepo
	limits   limitRepo
	weather  weatherRepo
	audit    auditRepo
	cache    *TrackingStartCache
	metrics  metricsRecorder

	loc           *time.Location
	includeToday  bool
	defaultPreset domain.Preset
	maxDays       int
	now           func() time.Time
}

// NewService creates a new report service instance. weather, audit and
// metrics may be nil.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	settings settingsRepo,
	limits limitRepo,
	weather weatherRepo,
	audit auditRepo,
	cache *TrackingStartCache,
	metrics metricsRecorder,
	opts Options,
) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	preset := opts.DefaultPreset
	if !preset.IsValid() || preset == domain.PresetCustom {
		preset = domain.Preset3M
	}
	maxDays := opts.MaxWindowDays
	if maxDays <= 0 {
		maxDays = DefaultMaxWindowDays
	}

	return &Service{
		log:           logger.With("service", "report"),
		events:        events,
		settings:      settings,
		limits:        limits,
		weather:       weather,
		audit:         audit,
		cache:         cache,
		metrics:       metrics,
		loc:           loc,
		includeToday:  opts.IncludeToday,
		defaultPreset: preset,
		maxDays:       maxDays,
		now:           now,
	}
}

// Today returns the current calendar date in the reference zone.
func (s *Service) Today() civil.Date {
	return analytics.Today(s.now(), s.loc)
}

// SignOut forgets every derived fact cached for the calling user.
func (s *Service) SignOut(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	s.cache.Forget(userID)
	s.log.InfoContext(ctx, "session signed out", slog.String("user_id", userID.String()))
	return nil
}

// trackingStart returns the first tracked day: the explicit setting, else the
// earliest stored event. Nil means the user has nothing tracked yet.
func (s *Service) trackingStart(ctx context.Context, userID uuid.UUID) (*civil.Date, error) {
	return s.cache.Get(ctx, userID, func(ctx context.Context, userID uuid.UUID) (*civil.Date, error) {
		start, err := s.settings.GetTrackingStart(ctx, userID)
		if err != nil {
			return nil, err
		}
		if start != nil {
			return start, nil
		}
		return s.events.EarliestDate(ctx, userID)
	})
}

func (s *Service) observe(kind string, started time.Time, rep *domain.Report, err error) {
	if s.metrics == nil {
		return
	}
	var days int
	var overuse bool
	if rep != nil {
		days = rep.Period.CalendarDays
		overuse = rep.Overuse.Flag
	}
	s.metrics.ObserveReport(kind, time.Since(started), days, overuse, err)
}
