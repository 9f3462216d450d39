package rest

import (
	"time"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/service/diary"
)

// Calendar dates travel as "YYYY-MM-DD" and times of day as "HH:MM:SS".

type windowDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type periodDTO struct {
	Preset        string    `json:"preset"`
	Window        windowDTO `json:"window"`
	CalendarDays  int       `json:"calendarDays"`
	IncludesToday bool      `json:"includesToday"`
}

type rawKPIsDTO struct {
	PainDays       int     `json:"painDays"`
	SevereDays     int     `json:"severeDays"`
	AcuteMedDays   int     `json:"acuteMedDays"`
	AcuteIntakes   int     `json:"acuteIntakes"`
	MedicationDays int     `json:"medicationDays"`
	MeanIntensity  float64 `json:"meanIntensity"`
	DocumentedDays int     `json:"documentedDays"`
	TotalEntries   int     `json:"totalEntries"`
}

type normalizedKPIsDTO struct {
	PainDays       float64 `json:"painDays"`
	SevereDays     float64 `json:"severeDays"`
	AcuteMedDays   float64 `json:"acuteMedDays"`
	AcuteIntakes   float64 `json:"acuteIntakes"`
	MedicationDays float64 `json:"medicationDays"`
}

type overuseDTO struct {
	Flag           bool    `json:"flag"`
	AcuteDaysPer30 float64 `json:"acuteDaysPer30"`
	ThresholdPer30 float64 `json:"thresholdPer30"`
}

type medicationStatDTO struct {
	Name              string   `json:"name"`
	Intakes           int      `json:"intakes"`
	Days              int      `json:"days"`
	MeanEffectiveness *float64 `json:"meanEffectiveness"`
	RatedIntakes      int      `json:"ratedIntakes"`
	AcuteClass        bool     `json:"acuteClass"`
}

type bucketsDTO struct {
	None         int `json:"none"`
	Mild         int `json:"mild"`
	Moderate     int `json:"moderate"`
	Severe       int `json:"severe"`
	Undocumented int `json:"undocumented"`
}

type dayClassDTO struct {
	Date     string   `json:"date"`
	Bucket   string   `json:"bucket"`
	Severity *float64 `json:"severity"`
}

type distributionDTO struct {
	CalendarDays      int           `json:"calendarDays"`
	DocumentedDays    int           `json:"documentedDays"`
	Buckets           bucketsDTO    `json:"buckets"`
	Days              []dayClassDTO `json:"days"`
	AvgDailyMax       float64       `json:"avgDailyMax"`
	P25               float64       `json:"p25"`
	P75               float64       `json:"p75"`
	DaysWithBurden    int           `json:"daysWithBurden"`
	BurdenPer30       float64       `json:"burdenPer30"`
	AllDocumentedZero bool          `json:"allDocumentedZero"`
	HasDocumentation  bool          `json:"hasDocumentation"`
}

type weatherDTO struct {
	Days            int      `json:"days"`
	AvgTemperatureC *float64 `json:"avgTemperatureC"`
	AvgPressureHPa  *float64 `json:"avgPressureHPa"`
	AvgHumidity     *float64 `json:"avgHumidity"`
}

// ReportResponse is the JSON shape of a report or clinician export.
type ReportResponse struct {
	Period       periodDTO           `json:"period"`
	Raw          rawKPIsDTO          `json:"raw"`
	Normalized   normalizedKPIsDTO   `json:"normalized"`
	Overuse      overuseDTO          `json:"overuse"`
	Medications  []medicationStatDTO `json:"medications"`
	Distribution distributionDTO     `json:"distribution"`
	Locations    map[string]int      `json:"locations"`
	Entries      []entryDTO          `json:"entries,omitempty"`
	Weather      *weatherDTO         `json:"weather,omitempty"`
}

type medicationIntakeDTO struct {
	Name          string `json:"name"`
	Effectiveness *int   `json:"effectiveness,omitempty"`
}

type entryDTO struct {
	ID            string                `json:"id"`
	Date          string                `json:"date"`
	Time          *string               `json:"time,omitempty"`
	Severity      *float64              `json:"severity"`
	Medications   []medicationIntakeDTO `json:"medications"`
	Notes         *string               `json:"notes,omitempty"`
	Aura          *bool                 `json:"aura,omitempty"`
	PainLocations []string              `json:"painLocations"`
	CreatedAt     time.Time             `json:"createdAt"`
}

type entryPageResponse struct {
	Entries []entryDTO `json:"entries"`
	Total   int        `json:"total"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
}

type limitDTO struct {
	ID             string    `json:"id"`
	MedicationName string    `json:"medicationName"`
	LimitCount     int       `json:"limitCount"`
	PeriodType     string    `json:"periodType"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type limitMessageDTO struct {
	Title      string `json:"title"`
	StatusLine string `json:"statusLine"`
	DetailLine string `json:"detailLine"`
}

type limitStatusDTO struct {
	Limit        limitDTO         `json:"limit"`
	CurrentCount int              `json:"currentCount"`
	Status       string           `json:"status"`
	Window       windowDTO        `json:"window"`
	Message      *limitMessageDTO `json:"message,omitempty"`
}

type exportRecordDTO struct {
	ID            string    `json:"id"`
	Scope         string    `json:"scope"`
	Preset        string    `json:"preset"`
	Window        windowDTO `json:"window"`
	EntryCount    int       `json:"entryCount"`
	NotesRedacted bool      `json:"notesRedacted"`
	CreatedAt     time.Time `json:"createdAt"`
}

type saveLimitRequest struct {
	MedicationName string `json:"medicationName"`
	LimitCount     int    `json:"limitCount"`
	PeriodType     string `json:"periodType"`
	IsActive       *bool  `json:"isActive,omitempty"`
}

func toWindowDTO(w domain.Window) windowDTO {
	return windowDTO{From: w.From.String(), To: w.To.String()}
}

// NewReportResponse maps a report onto its JSON shape.
func NewReportResponse(rep *domain.Report) ReportResponse {
	resp := ReportResponse{
		Period: periodDTO{
			Preset:        rep.Period.Preset.String(),
			Window:        toWindowDTO(rep.Period.Window),
			CalendarDays:  rep.Period.CalendarDays,
			IncludesToday: rep.Period.IncludesToday,
		},
		Raw: rawKPIsDTO(rep.Raw),
		Normalized: normalizedKPIsDTO(rep.Normalized),
		Overuse:    overuseDTO(rep.Overuse),
		Medications: make([]medicationStatDTO, len(rep.Medications)),
		Locations:   rep.Locations,
	}
	for i, m := range rep.Medications {
		resp.Medications[i] = medicationStatDTO(m)
	}

	d := rep.Distribution
	resp.Distribution = distributionDTO{
		CalendarDays:      d.CalendarDays,
		DocumentedDays:    d.DocumentedDays,
		Buckets:           bucketsDTO(d.Buckets),
		Days:              make([]dayClassDTO, len(d.Days)),
		AvgDailyMax:       d.AvgDailyMax,
		P25:               d.P25,
		P75:               d.P75,
		DaysWithBurden:    d.DaysWithBurden,
		BurdenPer30:       d.BurdenPer30,
		AllDocumentedZero: d.AllDocumentedZero,
		HasDocumentation:  d.HasDocumentation,
	}
	for i, day := range d.Days {
		resp.Distribution.Days[i] = dayClassDTO{Date: day.Date.String(), Bucket: day.Bucket.String(), Severity: day.Severity}
	}

	if rep.Entries != nil {
		resp.Entries = toEntryDTOs(rep.Entries)
	}
	if rep.Weather != nil {
		w := weatherDTO(*rep.Weather)
		resp.Weather = &w
	}
	if resp.Locations == nil {
		resp.Locations = map[string]int{}
	}
	return resp
}

func toEntryDTO(ev domain.HealthEvent) entryDTO {
	dto := entryDTO{
		ID:            ev.ID.String(),
		Date:          ev.Date.String(),
		Severity:      ev.Severity,
		Medications:   make([]medicationIntakeDTO, len(ev.Medications)),
		Notes:         ev.Notes,
		Aura:          ev.Aura,
		PainLocations: ev.PainLocations,
		CreatedAt:     ev.CreatedAt,
	}
	if ev.Time != nil {
		t := ev.Time.String()
		dto.Time = &t
	}
	for i, m := range ev.Medications {
		dto.Medications[i] = medicationIntakeDTO(m)
	}
	if dto.PainLocations == nil {
		dto.PainLocations = []string{}
	}
	return dto
}

func toEntryDTOs(events []domain.HealthEvent) []entryDTO {
	out := make([]entryDTO, len(events))
	for i, ev := range events {
		out[i] = toEntryDTO(ev)
	}
	return out
}

func toEntryPageResponse(page *diary.EntryPage) entryPageResponse {
	return entryPageResponse{
		Entries: toEntryDTOs(page.Entries),
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
}

func toLimitDTO(l domain.MedicationLimit) limitDTO {
	return limitDTO{
		ID:             l.ID.String(),
		MedicationName: l.MedicationName,
		LimitCount:     l.LimitCount,
		PeriodType:     l.PeriodType.String(),
		IsActive:       l.IsActive,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toLimitStatusDTO(e domain.LimitEvaluation) limitStatusDTO {
	dto := limitStatusDTO{
		Limit:        toLimitDTO(e.Limit),
		CurrentCount: e.CurrentCount,
		Status:       e.Status.String(),
		Window:       toWindowDTO(e.Window),
	}
	if e.Message != nil {
		m := limitMessageDTO(*e.Message)
		dto.Message = &m
	}
	return dto
}

func toExportRecordDTO(rec domain.ExportRecord) exportRecordDTO {
	return exportRecordDTO{
		ID:            rec.ID.String(),
		Scope:         rec.Scope,
		Preset:        rec.Preset.String(),
		Window:        toWindowDTO(rec.Window),
		EntryCount:    rec.EntryCount,
		NotesRedacted: rec.NotesRedacted,
		CreatedAt:     rec.CreatedAt,
	}
}
