package analytics

import (
	"cmp"
	"slices"
	"strings"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// CompareEntries orders events newest first:
//
//  1. date descending
//  2. time of day descending, an absent time counting as 23:59:59
//  3. creation timestamp descending
//  4. ID descending, so the order is total
//
// It returns a negative number when a sorts before b. The event repository's
// listing query uses the same ORDER BY.
func CompareEntries(a, b domain.HealthEvent) int {
	if c := compareDates(b.Date, a.Date); c != 0 {
		return c
	}
	if c := compareTimes(b.TimeOrEndOfDay(), a.TimeOrEndOfDay()); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(b.ID.String(), a.ID.String())
}

// SortEntries returns a copy of events in canonical order.
func SortEntries(events []domain.HealthEvent) []domain.HealthEvent {
	out := slices.Clone(events)
	slices.SortStableFunc(out, CompareEntries)
	return out
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func compareTimes(a, b civil.Time) int {
	if c := cmp.Compare(secondsOfDay(a), secondsOfDay(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.Nanosecond, b.Nanosecond)
}

func secondsOfDay(t civil.Time) int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}
