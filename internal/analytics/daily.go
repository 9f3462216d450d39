package analytics

import (
	"github.com/golang-sql/civil"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// DailyMap holds the aggregated record of every day in a window that has at
// least one event. Days without events are answered by Day.
type DailyMap struct {
	Window domain.Window
	days   map[civil.Date]domain.DayRecord
	latest map[civil.Date]domain.HealthEvent
}

// Day returns the record for d. A day without events is undocumented with
// EntryCount 0.
func (m DailyMap) Day(d civil.Date) domain.DayRecord {
	if rec, ok := m.days[d]; ok {
		return rec
	}
	return domain.DayRecord{Date: d}
}

// ActiveDays returns the number of days with at least one event.
func (m DailyMap) ActiveDays() int {
	return len(m.days)
}

// BuildDailyMap groups events by calendar day inside window.
//
// A day is documented iff at least one of its events carries an explicit
// severity, zero included. The representative severity is the maximum of the
// explicit values; events without severity count as activity only.
func BuildDailyMap(events []domain.HealthEvent, window domain.Window) DailyMap {
	m := DailyMap{
		Window: window,
		days:   make(map[civil.Date]domain.DayRecord),
		latest: make(map[civil.Date]domain.HealthEvent),
	}

	for _, ev := range events {
		if !window.Contains(ev.Date) {
			continue
		}

		rec, ok := m.days[ev.Date]
		if !ok {
			rec = domain.DayRecord{Date: ev.Date}
		}
		rec.EntryCount++

		if ev.Severity != nil {
			v := ClampSeverity(*ev.Severity)
			if rec.Severity == nil || v > *rec.Severity {
				rec.Severity = &v
			}
			rec.Documented = true
		}

		if cur, seen := m.latest[ev.Date]; !seen || CompareEntries(ev, cur) < 0 {
			m.latest[ev.Date] = ev
			rec.LatestEventID = ev.ID
		}

		m.days[ev.Date] = rec
	}

	return m
}

// Latest returns the most recent event of day d by time of day.
func (m DailyMap) Latest(d civil.Date) (domain.HealthEvent, bool) {
	ev, ok := m.latest[d]
	return ev, ok
}
