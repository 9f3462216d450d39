package analytics

import (
	"math"
	"slices"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// BuildDistribution classifies every calendar day of [start, end] exactly once
// and derives the severity statistics of the documented days.
//
// Invariants, for every input:
//
//	Buckets.Total() == CalendarDays
//	DocumentedDays + Buckets.Undocumented == CalendarDays
func BuildDistribution(events []domain.HealthEvent, start, end civil.Date) domain.Distribution {
	window := domain.Window{From: start, To: end}
	daily := BuildDailyMap(events, window)
	return distributionFromDaily(daily)
}

func distributionFromDaily(daily DailyMap) domain.Distribution {
	days := EachDay(daily.Window)

	dist := domain.Distribution{
		CalendarDays: len(days),
		Days:         make([]domain.DayClass, 0, len(days)),
	}

	values := make([]float64, 0, len(days))
	for _, d := range days {
		rec := daily.Day(d)
		bucket := classifyDay(rec)
		dist.Buckets.Add(bucket)
		dist.Days = append(dist.Days, domain.DayClass{Date: d, Bucket: bucket, Severity: rec.Severity})

		if bucket == domain.DayBucketUndocumented {
			continue
		}
		dist.DocumentedDays++
		values = append(values, *rec.Severity)
		if *rec.Severity > 0 {
			dist.DaysWithBurden++
		}
	}

	slices.Sort(values)
	dist.P25 = Percentile(values, 25)
	dist.P75 = Percentile(values, 75)
	dist.AvgDailyMax = Round1(mean(values))

	if dist.DocumentedDays > 0 {
		dist.BurdenPer30 = Round1(float64(dist.DaysWithBurden) / float64(dist.DocumentedDays) * ReferenceDays)
	}
	dist.HasDocumentation = dist.DocumentedDays > 0
	dist.AllDocumentedZero = dist.HasDocumentation && dist.DaysWithBurden == 0

	return dist
}

// classifyDay maps a day record onto its bucket. An explicit zero is "none",
// not undocumented.
func classifyDay(rec domain.DayRecord) domain.DayBucket {
	if !rec.Documented || rec.Severity == nil {
		return domain.DayBucketUndocumented
	}
	if *rec.Severity == 0 {
		return domain.DayBucketNone
	}
	return domain.BucketOf(ScoreToLevel(*rec.Severity))
}

// Percentile returns the p-th percentile of sorted by linear interpolation
// between the two closest ranks, rank = (p/100)*(n-1). Empty input yields 0.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	rank := (p / 100) * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	lo = max(0, min(lo, n-1))
	hi = max(0, min(hi, n-1))

	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
