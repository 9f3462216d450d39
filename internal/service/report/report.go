package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/paindiary-backend/internal/analytics"
	"github.com/heartmarshall/paindiary-backend/internal/auth"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/pkg/ctxutil"
)

const (
	kindReport = "report"
	kindExport = "export"
)

// GetReport builds the KPI report of the calling user for the requested
// window. Entries are attached only when requested.
func (s *Service) GetReport(ctx context.Context, in ReportInput) (*domain.Report, error) {
	started := time.Now()
	rep, err := s.build(ctx, in, in.IncludeEntries, in.redact(false))
	s.observe(kindReport, started, rep, err)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report built",
		slog.String("preset", rep.Period.Preset.String()),
		slog.Int("calendar_days", rep.Period.CalendarDays),
		slog.Int("entries", rep.Raw.TotalEntries),
		slog.Bool("overuse", rep.Overuse.Flag),
	)
	return rep, nil
}

// ExportForClinician builds the report with every entry of the window
// attached. Notes are redacted unless the input explicitly keeps them.
func (s *Service) ExportForClinician(ctx context.Context, in ReportInput) (*domain.Report, error) {
	started := time.Now()
	redact := in.redact(true)
	rep, err := s.build(ctx, in, true, redact)
	if err == nil {
		err = s.recordExport(ctx, rep, redact)
	}
	s.observe(kindExport, started, rep, err)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "clinician export built",
		slog.String("preset", rep.Period.Preset.String()),
		slog.Int("entries", len(rep.Entries)),
		slog.Bool("notes_redacted", redact),
	)
	return rep, nil
}

// recordExport appends the export to the disclosure log. An export that
// cannot be logged is not handed out.
func (s *Service) recordExport(ctx context.Context, rep *domain.Report, redacted bool) error {
	if s.audit == nil {
		return nil
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	scope := ctxutil.ScopeFromCtx(ctx)
	if scope == "" {
		scope = auth.ScopeOwner
	}

	err := s.audit.Log(ctx, domain.ExportRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Scope:         scope,
		Preset:        rep.Period.Preset,
		Window:        rep.Period.Window,
		EntryCount:    len(rep.Entries),
		NotesRedacted: redacted,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("record export: %w", err)
	}
	return nil
}

func (s *Service) build(ctx context.Context, in ReportInput, includeEntries, redact bool) (*domain.Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	from, to, err := in.bounds()
	if err != nil {
		return nil, err
	}

	preset := in.Preset
	if preset == "" {
		preset = s.defaultPreset
	}
	if preset != domain.PresetCustom && (from != nil || to != nil) {
		return nil, domain.NewValidationError("preset", "from and to require the custom preset")
	}

	opts := analytics.ResolveOptions{From: from, To: to, IncludeToday: s.includeToday, MaxDays: s.maxDays}
	if preset == domain.PresetAll {
		opts.TrackingStart, err = s.trackingStart(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve tracking start: %w", err)
		}
	}

	today := s.Today()
	window, err := analytics.Resolve(preset, today, opts)
	if err != nil {
		return nil, err
	}

	var (
		events  []domain.HealthEvent
		weather *domain.WeatherSummary
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		events, err = s.events.ListByWindow(gctx, userID, window)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		weather = s.loadWeather(gctx, userID, window)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := analytics.BuildReport(analytics.ReportInput{
		Preset:         preset,
		Window:         window,
		IncludesToday:  window.Contains(today),
		Events:         events,
		IncludeEntries: includeEntries,
		RedactNotes:    redact,
	})
	rep.Weather = weather

	return &rep, nil
}

// loadWeather returns the rounded weather summary of window. Weather is
// optional context, so failures are logged and yield nil.
func (s *Service) loadWeather(ctx context.Context, userID uuid.UUID, window domain.Window) *domain.WeatherSummary {
	if s.weather == nil {
		return nil
	}

	summary, err := s.weather.Summary(ctx, userID, window)
	if err != nil {
		if ctx.Err() == nil {
			s.log.WarnContext(ctx, "weather summary unavailable",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	if summary == nil {
		return nil
	}

	out := *summary
	out.AvgTemperatureC = round1(summary.AvgTemperatureC)
	out.AvgPressureHPa = round1(summary.AvgPressureHPa)
	out.AvgHumidity = round1(summary.AvgHumidity)
	return &out
}

func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := analytics.Round1(*v)
	return &r
}
