package analytics

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func clock(h, m int) *civil.Time {
	return &civil.Time{Hour: h, Minute: m}
}

func event(d civil.Date, severity *float64, meds ...string) domain.HealthEvent {
	intakes := make([]domain.MedicationIntake, len(meds))
	for i, m := range meds {
		intakes[i] = domain.MedicationIntake{Name: m}
	}
	return domain.HealthEvent{
		ID:          uuid.New(),
		Date:        d,
		Severity:    severity,
		Medications: intakes,
		CreatedAt:   time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC),
	}
}
