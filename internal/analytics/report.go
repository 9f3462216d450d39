package analytics

import (
	"cmp"
	"slices"
	"strings"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// ReportInput is the snapshot a report is computed from.
type ReportInput struct {
	Preset        domain.Preset
	Window        domain.Window
	IncludesToday bool
	Events        []domain.HealthEvent
	// IncludeEntries attaches the window's events in canonical order.
	IncludeEntries bool
	// RedactNotes strips free-text notes from attached entries.
	RedactNotes bool
}

// BuildReport composes the day aggregation, distribution, KPIs, medication
// breakdown and location frequencies of one window.
func BuildReport(in ReportInput) domain.Report {
	inWindow := make([]domain.HealthEvent, 0, len(in.Events))
	for _, ev := range in.Events {
		if in.Window.Contains(ev.Date) {
			inWindow = append(inWindow, ev)
		}
	}
	// Oldest first, so display names come from the first recorded spelling.
	ordered := SortEntries(inWindow)
	slices.Reverse(ordered)

	daily := BuildDailyMap(ordered, in.Window)
	dist := distributionFromDaily(daily)
	calendarDays := dist.CalendarDays

	raw := domain.RawKPIs{
		PainDays:       dist.DaysWithBurden,
		SevereDays:     dist.Buckets.Severe,
		DocumentedDays: dist.DocumentedDays,
		TotalEntries:   len(ordered),
	}

	var burden []float64
	for _, day := range dist.Days {
		if day.Severity != nil && *day.Severity > 0 {
			burden = append(burden, *day.Severity)
		}
	}
	raw.MeanIntensity = Round1(mean(burden))

	acuteDays := make(map[civil.Date]struct{})
	medDays := make(map[civil.Date]struct{})
	meds := make(map[string]*medicationAgg)
	var medOrder []string

	for _, ev := range ordered {
		for _, intake := range ev.Medications {
			key := MedicationKey(intake.Name)
			if key == "" {
				continue
			}
			medDays[ev.Date] = struct{}{}

			agg, ok := meds[key]
			if !ok {
				agg = &medicationAgg{
					name:  strings.TrimSpace(intake.Name),
					days:  make(map[civil.Date]struct{}),
					acute: IsAcuteClass(intake.Name),
				}
				meds[key] = agg
				medOrder = append(medOrder, key)
			}
			agg.add(ev.Date, intake)

			if agg.acute {
				acuteDays[ev.Date] = struct{}{}
				raw.AcuteIntakes++
			}
		}
	}
	raw.AcuteMedDays = len(acuteDays)
	raw.MedicationDays = len(medDays)

	normalized := domain.NormalizedKPIs{
		PainDays:       NormalizePer30(float64(raw.PainDays), calendarDays),
		SevereDays:     NormalizePer30(float64(raw.SevereDays), calendarDays),
		AcuteMedDays:   NormalizePer30(float64(raw.AcuteMedDays), calendarDays),
		AcuteIntakes:   NormalizePer30(float64(raw.AcuteIntakes), calendarDays),
		MedicationDays: NormalizePer30(float64(raw.MedicationDays), calendarDays),
	}

	report := domain.Report{
		Period: domain.ReportPeriod{
			Preset:        in.Preset,
			Window:        in.Window,
			CalendarDays:  calendarDays,
			IncludesToday: in.IncludesToday,
		},
		Raw:        raw,
		Normalized: normalized,
		Overuse: domain.Overuse{
			Flag:           normalized.AcuteMedDays >= OveruseDaysPer30,
			AcuteDaysPer30: normalized.AcuteMedDays,
			ThresholdPer30: OveruseDaysPer30,
		},
		Medications:  medicationStats(meds, medOrder),
		Distribution: dist,
		Locations:    locationFrequency(ordered),
	}

	if in.IncludeEntries {
		entries := SortEntries(inWindow)
		if in.RedactNotes {
			for i := range entries {
				entries[i] = entries[i].Redacted()
			}
		}
		report.Entries = entries
	}

	return report
}

type medicationAgg struct {
	name      string
	intakes   int
	days      map[civil.Date]struct{}
	ratingSum int
	rated     int
	acute     bool
}

func (a *medicationAgg) add(d civil.Date, intake domain.MedicationIntake) {
	a.intakes++
	a.days[d] = struct{}{}
	if intake.Effectiveness != nil {
		a.ratingSum += *intake.Effectiveness
		a.rated++
	}
}

// medicationStats sorts by intakes descending, then by name.
func medicationStats(meds map[string]*medicationAgg, order []string) []domain.MedicationStat {
	stats := make([]domain.MedicationStat, 0, len(order))
	for _, key := range order {
		agg := meds[key]
		stat := domain.MedicationStat{
			Name:         agg.name,
			Intakes:      agg.intakes,
			Days:         len(agg.days),
			RatedIntakes: agg.rated,
			AcuteClass:   agg.acute,
		}
		if agg.rated > 0 {
			avg := Round1(float64(agg.ratingSum) / float64(agg.rated))
			stat.MeanEffectiveness = &avg
		}
		stats = append(stats, stat)
	}

	slices.SortStableFunc(stats, func(a, b domain.MedicationStat) int {
		if c := cmp.Compare(b.Intakes, a.Intakes); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return stats
}

func locationFrequency(events []domain.HealthEvent) map[string]int {
	freq := make(map[string]int)
	for _, ev := range events {
		for _, loc := range domain.NormalizeLocations(ev.PainLocations) {
			freq[loc]++
		}
	}
	return freq
}
