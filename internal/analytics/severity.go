package analytics

import (
	"math"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// Severity scale bounds.
const (
	MinSeverity = 0.0
	MaxSeverity = 10.0
)

// Upper bounds (inclusive) of the mild and moderate buckets. Zero is none,
// anything above ModerateMax is severe.
const (
	MildMax     = 4.0
	ModerateMax = 7.0
)

// LegacyScores maps the old ordinal labels onto the numeric scale. Each score
// sits inside its bucket, not on a boundary.
var LegacyScores = map[domain.SeverityLevel]float64{
	domain.SeverityNone:     0,
	domain.SeverityMild:     3,
	domain.SeverityModerate: 6,
	domain.SeveritySevere:   9,
}

// ClampSeverity limits score to the 0–10 scale. NaN becomes 0.
func ClampSeverity(score float64) float64 {
	if math.IsNaN(score) {
		return MinSeverity
	}
	return math.Min(MaxSeverity, math.Max(MinSeverity, score))
}

// ScoreToLevel maps a numeric severity onto its bucket:
//
//	0 → none, (0,4] → mild, (4,7] → moderate, (7,10] → severe
func ScoreToLevel(score float64) domain.SeverityLevel {
	s := ClampSeverity(score)
	switch {
	case s <= MinSeverity:
		return domain.SeverityNone
	case s <= MildMax:
		return domain.SeverityMild
	case s <= ModerateMax:
		return domain.SeverityModerate
	default:
		return domain.SeveritySevere
	}
}
