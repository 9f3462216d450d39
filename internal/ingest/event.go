package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/analytics"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

const (
	maxMedications   = 20
	maxMedNameLen    = 200
	maxNotesLen      = 5000
	maxLocations     = 20
	maxLocationLen   = 100
	maxEffectiveness = 10
)

// MedicationInput is one intake as submitted.
type MedicationInput struct {
	Name          string `json:"name"`
	Effectiveness *int   `json:"effectiveness,omitempty"`
}

// EventInput is a diary entry as submitted. Date is "2006-01-02"; Time is
// "15:04" or "15:04:05" and may be omitted.
type EventInput struct {
	Date          string            `json:"date"`
	Time          *string           `json:"time,omitempty"`
	Severity      SeverityInput     `json:"severity"`
	Medications   []MedicationInput `json:"medications,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	Aura          *bool             `json:"aura,omitempty"`
	PainLocations []string          `json:"painLocations,omitempty"`
}

// Validate checks all fields and collects all errors.
func (in EventInput) Validate() error {
	_, err := in.ToEvent(uuid.Nil)
	return err
}

// ToEvent validates the input and converts it into a HealthEvent owned by
// userID. ID and CreatedAt are left for the repository to assign.
func (in EventInput) ToEvent(userID uuid.UUID) (domain.HealthEvent, error) {
	var errs []domain.FieldError

	ev := domain.HealthEvent{UserID: userID}

	date, err := ParseDate(in.Date)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: err.Error()})
	}
	ev.Date = date

	if in.Time != nil && strings.TrimSpace(*in.Time) != "" {
		t, err := ParseTime(*in.Time)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "time", Message: err.Error()})
		} else {
			ev.Time = &t
		}
	}

	severity, err := in.Severity.Normalize()
	if err != nil {
		errs = append(errs, fieldErrors(err)...)
	}
	ev.Severity = severity

	if len(in.Medications) > maxMedications {
		errs = append(errs, domain.FieldError{Field: "medications", Message: fmt.Sprintf("max %d intakes", maxMedications)})
	}
	for i, med := range in.Medications {
		field := fmt.Sprintf("medications[%d]", i)
		name := strings.Join(strings.Fields(med.Name), " ")
		switch {
		case name == "":
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: "required"})
		case len(name) > maxMedNameLen:
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: fmt.Sprintf("max %d characters", maxMedNameLen)})
		case analytics.MedicationKey(name) == "":
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: "must contain a letter or digit"})
		}
		if med.Effectiveness != nil && (*med.Effectiveness < 0 || *med.Effectiveness > maxEffectiveness) {
			errs = append(errs, domain.FieldError{Field: field + ".effectiveness", Message: "must be between 0 and 10"})
		}
		ev.Medications = append(ev.Medications, domain.MedicationIntake{Name: name, Effectiveness: med.Effectiveness})
	}

	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		if len(notes) > maxNotesLen {
			errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
		}
		if notes != "" {
			ev.Notes = &notes
		}
	}

	ev.Aura = in.Aura

	locations := domain.NormalizeLocations(in.PainLocations)
	if len(locations) > maxLocations {
		errs = append(errs, domain.FieldError{Field: "painLocations", Message: fmt.Sprintf("max %d locations", maxLocations)})
	}
	for _, l := range locations {
		if len(l) > maxLocationLen {
			errs = append(errs, domain.FieldError{Field: "painLocations", Message: fmt.Sprintf("max %d characters per location", maxLocationLen)})
			break
		}
	}
	ev.PainLocations = locations

	if ev.Severity == nil && len(ev.Medications) == 0 && ev.Notes == nil && ev.Aura == nil && len(ev.PainLocations) == 0 {
		errs = append(errs, domain.FieldError{Field: "entry", Message: "nothing to record"})
	}

	if len(errs) > 0 {
		return domain.HealthEvent{}, domain.NewValidationErrors(errs)
	}
	return ev, nil
}

// ParseDate parses a calendar day in "2006-01-02" form.
func ParseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Date{}, errors.New("required")
	}
	d, err := civil.ParseDate(s)
	if err != nil || !d.IsValid() {
		return civil.Date{}, errors.New("must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// ParseTime parses a time of day in "15:04" or "15:04:05" form.
func ParseTime(s string) (civil.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.TimeOf(t), nil
		}
	}
	return civil.Time{}, errors.New("must be a time in HH:MM format")
}

func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "severity", Message: err.Error()}}
}
