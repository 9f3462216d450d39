// Package analytics turns a diary's dated events into calendar-aligned
// statistics: day aggregation, severity buckets, distributions, per-30-day
// rates, medication classification and limit evaluation.
//
// Every function is pure. Callers pass an immutable snapshot of events and
// configuration and the reference "today"; nothing is cached here.
package analytics

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// ResolveOptions carries the inputs a preset may need besides "today".
type ResolveOptions struct {
	// From and To bound a custom window.
	From *civil.Date
	To   *civil.Date
	// TrackingStart is the first tracked day (explicit setting or earliest
	// entry), used by the "all" preset.
	TrackingStart *civil.Date
	// IncludeToday ends every non-custom window at today instead of yesterday.
	IncludeToday bool
	// MaxDays caps the length of custom and "all" windows. Zero means no cap.
	MaxDays int
}

// Resolve turns a symbolic window into concrete calendar bounds.
// Non-custom windows end yesterday unless opts.IncludeToday is set.
func Resolve(preset domain.Preset, today civil.Date, opts ResolveOptions) (domain.Window, error) {
	end := today.AddDays(-1)
	if opts.IncludeToday {
		end = today
	}

	switch preset {
	case domain.PresetCustom:
		var errs []domain.FieldError
		if opts.From == nil {
			errs = append(errs, domain.FieldError{Field: "from", Message: "required for custom range"})
		}
		if opts.To == nil {
			errs = append(errs, domain.FieldError{Field: "to", Message: "required for custom range"})
		}
		if len(errs) > 0 {
			return domain.Window{}, domain.NewValidationErrors(errs)
		}
		if opts.From.After(*opts.To) {
			return domain.Window{}, domain.NewValidationError("from", "must not be after to")
		}
		if opts.MaxDays > 0 && DaysBetweenInclusive(*opts.From, *opts.To) > opts.MaxDays {
			return domain.Window{}, domain.NewValidationError("to", fmt.Sprintf("window must not exceed %d days", opts.MaxDays))
		}
		return domain.Window{From: *opts.From, To: *opts.To}, nil

	case domain.PresetAll:
		from := end
		if opts.TrackingStart != nil && opts.TrackingStart.Before(end) {
			from = *opts.TrackingStart
		}
		if opts.MaxDays > 0 && DaysBetweenInclusive(from, end) > opts.MaxDays {
			from = end.AddDays(-(opts.MaxDays - 1))
		}
		return domain.Window{From: from, To: end}, nil

	case domain.Preset1M, domain.Preset3M, domain.Preset6M, domain.Preset12M:
		return domain.Window{From: end.AddDays(-(preset.Days() - 1)), To: end}, nil
	}

	return domain.Window{}, domain.NewValidationError("preset", "must be one of 1m, 3m, 6m, 12m, all, custom")
}

// DaysBetweenInclusive returns the number of calendar days in [from, to].
// The difference is taken on calendar dates, so DST shifts never change it.
// Returns 0 when from is after to.
func DaysBetweenInclusive(from, to civil.Date) int {
	if from.After(to) {
		return 0
	}
	return to.DaysSince(from) + 1
}

// EachDay returns every calendar date in the window, ascending.
func EachDay(w domain.Window) []civil.Date {
	n := DaysBetweenInclusive(w.From, w.To)
	days := make([]civil.Date, n)
	for i := range days {
		days[i] = w.From.AddDays(i)
	}
	return days
}

// Today returns the calendar date of now in the reference zone.
func Today(now time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(now.In(loc))
}
