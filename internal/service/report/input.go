package report

import (
	"github.com/golang-sql/civil"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/ingest"
)

// ReportInput holds parameters for the report and export operations.
// From and To are "YYYY-MM-DD" and only used by the custom preset.
type ReportInput struct {
	Preset         domain.Preset
	From           string
	To             string
	IncludeEntries bool
	// RedactNotes strips notes from attached entries. Nil keeps notes in
	// reports and redacts them in clinician exports.
	RedactNotes *bool
}

// Validate validates the report input.
func (i ReportInput) Validate() error {
	_, _, err := i.bounds()
	return err
}

func (i ReportInput) bounds() (from, to *civil.Date, err error) {
	var errs []domain.FieldError

	if i.Preset != "" && !i.Preset.IsValid() {
		errs = append(errs, domain.FieldError{Field: "preset", Message: "must be one of 1m, 3m, 6m, 12m, all, custom"})
	}

	parse := func(field, raw string) *civil.Date {
		if raw == "" {
			return nil
		}
		d, perr := ingest.ParseDate(raw)
		if perr != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: perr.Error()})
			return nil
		}
		return &d
	}
	from = parse("from", i.From)
	to = parse("to", i.To)

	if len(errs) > 0 {
		return nil, nil, &domain.ValidationError{Errors: errs}
	}
	return from, to, nil
}

func (i ReportInput) redact(def bool) bool {
	if i.RedactNotes == nil {
		return def
	}
	return *i.RedactNotes
}
