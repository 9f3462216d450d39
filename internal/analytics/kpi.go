package analytics

import "math"

// ReferenceDays is the period every rate is normalized to.
const ReferenceDays = 30

// OveruseDaysPer30 is the acute-medication-day rate at which a report flags
// medication overuse (10 or more triptan days per 30 days).
const OveruseDaysPer30 = 10.0

// Normalize rescales raw, observed over daysInRange days, to targetDays and
// rounds to one decimal. Returns 0 when daysInRange <= 0.
func Normalize(raw float64, daysInRange, targetDays int) float64 {
	if daysInRange <= 0 {
		return 0
	}
	return Round1(raw * float64(targetDays) / float64(daysInRange))
}

// NormalizePer30 is Normalize with the 30-day reference period.
func NormalizePer30(raw float64, daysInRange int) float64 {
	return Normalize(raw, daysInRange, ReferenceDays)
}

// Round1 rounds v to one decimal. NaN and infinities become 0.
func Round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}
