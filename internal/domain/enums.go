package domain

// SeverityLevel is the ordered severity bucket of a numeric score.
type SeverityLevel string

const (
	SeverityNone     SeverityLevel = "none"
	SeverityMild     SeverityLevel = "mild"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
)

func (l SeverityLevel) String() string { return string(l) }

func (l SeverityLevel) IsValid() bool {
	switch l {
	case SeverityNone, SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// Rank returns the position of the level in the ordered scale (none=0 .. severe=3).
// Unknown levels rank below none.
func (l SeverityLevel) Rank() int {
	switch l {
	case SeverityNone:
		return 0
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	}
	return -1
}

// DayBucket classifies one calendar day of a window.
type DayBucket string

const (
	DayBucketNone         DayBucket = "none"
	DayBucketMild         DayBucket = "mild"
	DayBucketModerate     DayBucket = "moderate"
	DayBucketSevere       DayBucket = "severe"
	DayBucketUndocumented DayBucket = "undocumented"
)

func (b DayBucket) String() string { return string(b) }

// BucketOf maps a severity level onto its day bucket.
func BucketOf(l SeverityLevel) DayBucket {
	switch l {
	case SeverityMild:
		return DayBucketMild
	case SeverityModerate:
		return DayBucketModerate
	case SeveritySevere:
		return DayBucketSevere
	}
	return DayBucketNone
}

// PeriodType is the time frame a medication limit applies to.
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
)

func (p PeriodType) String() string { return string(p) }

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// Days returns the length of the trailing window counted for the period.
func (p PeriodType) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	}
	return 1
}

// LimitStatus is the state of a usage count relative to its limit.
type LimitStatus string

const (
	LimitSafe     LimitStatus = "safe"
	LimitWarning  LimitStatus = "warning"
	LimitReached  LimitStatus = "reached"
	LimitExceeded LimitStatus = "exceeded"
)

func (s LimitStatus) String() string { return string(s) }

// Preset is a symbolic report window.
type Preset string

const (
	Preset1M     Preset = "1m"
	Preset3M     Preset = "3m"
	Preset6M     Preset = "6m"
	Preset12M    Preset = "12m"
	PresetAll    Preset = "all"
	PresetCustom Preset = "custom"
)

func (p Preset) String() string { return string(p) }

func (p Preset) IsValid() bool {
	switch p {
	case Preset1M, Preset3M, Preset6M, Preset12M, PresetAll, PresetCustom:
		return true
	}
	return false
}

// Days returns the inclusive day count of fixed-length presets, 0 otherwise.
func (p Preset) Days() int {
	switch p {
	case Preset1M:
		return 30
	case Preset3M:
		return 90
	case Preset6M:
		return 180
	case Preset12M:
		return 365
	}
	return 0
}
