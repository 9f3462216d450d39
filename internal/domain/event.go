package domain

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// EndOfDay is the time of day used for events recorded without a time.
var EndOfDay = civil.Time{Hour: 23, Minute: 59, Second: 59}

// HealthEvent is one diary entry. Severity is the canonical 0–10 score;
// nil means the field was never documented, which is distinct from an explicit 0.
type HealthEvent struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Date          civil.Date
	Time          *civil.Time
	Severity      *float64
	Medications   []MedicationIntake
	Notes         *string
	Aura          *bool
	PainLocations []string
	CreatedAt     time.Time
}

// HasSeverity reports whether the event carries an explicit severity value.
func (e HealthEvent) HasSeverity() bool {
	return e.Severity != nil
}

// TimeOrEndOfDay returns the event time, or 23:59:59 when it is absent.
func (e HealthEvent) TimeOrEndOfDay() civil.Time {
	if e.Time == nil {
		return EndOfDay
	}
	return *e.Time
}

// Redacted returns a copy of the event without free-text notes.
func (e HealthEvent) Redacted() HealthEvent {
	e.Notes = nil
	return e
}

// MedicationIntake is a single medication taken as part of an event.
// Effectiveness is an optional 0–10 rating given after the fact.
type MedicationIntake struct {
	Name          string
	Effectiveness *int
}

// Window is an inclusive range of calendar days in the reference zone.
type Window struct {
	From civil.Date
	To   civil.Date
}

// Contains reports whether d lies inside the window.
func (w Window) Contains(d civil.Date) bool {
	return !d.Before(w.From) && !d.After(w.To)
}
