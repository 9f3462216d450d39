package domain

import (
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// DayRecord is the aggregated view of one calendar day. It is derived per
// request and never persisted.
type DayRecord struct {
	Date          civil.Date
	Documented    bool
	Severity      *float64 // max explicit severity of the day, nil when undocumented
	EntryCount    int
	LatestEventID uuid.UUID
}

// BucketCounts holds the number of days per classification bucket.
type BucketCounts struct {
	None         int
	Mild         int
	Moderate     int
	Severe       int
	Undocumented int
}

// Total returns the sum over all buckets including undocumented.
func (c BucketCounts) Total() int {
	return c.None + c.Mild + c.Moderate + c.Severe + c.Undocumented
}

// Add increments the counter for b.
func (c *BucketCounts) Add(b DayBucket) {
	switch b {
	case DayBucketNone:
		c.None++
	case DayBucketMild:
		c.Mild++
	case DayBucketModerate:
		c.Moderate++
	case DayBucketSevere:
		c.Severe++
	default:
		c.Undocumented++
	}
}

// DayClass is the bucket assigned to one calendar day.
type DayClass struct {
	Date     civil.Date
	Bucket   DayBucket
	Severity *float64
}

// Distribution is the full calendar-day classification of a window.
type Distribution struct {
	CalendarDays      int
	DocumentedDays    int
	Buckets           BucketCounts
	Days              []DayClass
	AvgDailyMax       float64
	P25               float64
	P75               float64
	DaysWithBurden    int
	BurdenPer30       float64
	AllDocumentedZero bool
	HasDocumentation  bool
}

// ReportPeriod describes the resolved window of a report.
type ReportPeriod struct {
	Preset        Preset
	Window        Window
	CalendarDays  int
	IncludesToday bool
}

// RawKPIs are incidence counts over the report window.
type RawKPIs struct {
	PainDays       int
	SevereDays     int
	AcuteMedDays   int
	AcuteIntakes   int
	MedicationDays int
	MeanIntensity  float64
	DocumentedDays int
	TotalEntries   int
}

// NormalizedKPIs are RawKPIs rescaled to a 30-day reference period.
type NormalizedKPIs struct {
	PainDays       float64
	SevereDays     float64
	AcuteMedDays   float64
	AcuteIntakes   float64
	MedicationDays float64
}

// MedicationStat summarises one medication over the report window.
type MedicationStat struct {
	Name              string
	Intakes           int
	Days              int
	MeanEffectiveness *float64
	RatedIntakes      int
	AcuteClass        bool
}

// Overuse is the medication-overuse assessment of a report.
type Overuse struct {
	Flag           bool
	AcuteDaysPer30 float64
	ThresholdPer30 float64
}

// WeatherSummary is optional context averaged over the report window.
type WeatherSummary struct {
	Days            int
	AvgTemperatureC *float64
	AvgPressureHPa  *float64
	AvgHumidity     *float64
}

// Report is the complete KPI payload consumed by charts, exports and
// clinician views.
type Report struct {
	Period       ReportPeriod
	Raw          RawKPIs
	Normalized   NormalizedKPIs
	Overuse      Overuse
	Medications  []MedicationStat
	Distribution Distribution
	Locations    map[string]int
	Entries      []HealthEvent
	Weather      *WeatherSummary
}
