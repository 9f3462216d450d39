package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if c.Diary.MaxEntriesPerUser <= 0 {
		return fmt.Errorf("diary.max_entries_per_user must be > 0 (got %d)", c.Diary.MaxEntriesPerUser)
	}
	if c.Diary.DefaultPageSize <= 0 || c.Diary.DefaultPageSize > 200 {
		return fmt.Errorf("diary.default_page_size must be between 1 and 200 (got %d)", c.Diary.DefaultPageSize)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if c.CORS.AllowCredentials && strings.Contains(c.CORS.AllowedOrigins, "*") {
		return fmt.Errorf("cors.allowed_origins must not contain * when allow_credentials is set")
	}

	if c.RateLimit.ReportsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.reports_per_minute must be > 0 (got %d)", c.RateLimit.ReportsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (r ReportConfig) validate() error {
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}

	preset := domain.Preset(r.DefaultPreset)
	if !preset.IsValid() || preset == domain.PresetCustom {
		return fmt.Errorf("default_preset %q is not a symbolic preset", r.DefaultPreset)
	}

	if r.TrackingCacheSize <= 0 {
		return fmt.Errorf("tracking_cache_size must be > 0 (got %d)", r.TrackingCacheSize)
	}

	if r.MaxCustomDays < 366 {
		return fmt.Errorf("max_custom_days must be >= 366 (got %d)", r.MaxCustomDays)
	}

	return nil
}
