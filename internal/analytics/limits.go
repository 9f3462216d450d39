package analytics

import (
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// GetLimitStatus compares a usage count with its limit. The warning point is
// always one intake before the limit and only exists for limits above 1.
func GetLimitStatus(currentCount, limitCount int) domain.LimitStatus {
	switch {
	case currentCount > limitCount:
		return domain.LimitExceeded
	case currentCount == limitCount:
		return domain.LimitReached
	case currentCount == limitCount-1 && limitCount > 1:
		return domain.LimitWarning
	}
	return domain.LimitSafe
}

// BuildLimitMessage renders the banner text for a status. It returns nil for
// safe. periodType only changes the wording, never the threshold.
func BuildLimitMessage(status domain.LimitStatus, currentCount, limitCount int, periodType domain.PeriodType, medicationName string) *domain.LimitMessage {
	phrase := periodPhrase(periodType)
	statusLine := fmt.Sprintf("%s: %s %s (limit %d)", medicationName, intakes(currentCount), phrase, limitCount)

	switch status {
	case domain.LimitExceeded:
		return &domain.LimitMessage{
			Title:      "Limit exceeded",
			StatusLine: statusLine,
			DetailLine: fmt.Sprintf("You are %s over your limit %s.", intakes(currentCount-limitCount), phrase),
		}
	case domain.LimitReached:
		return &domain.LimitMessage{
			Title:      "Limit reached",
			StatusLine: statusLine,
			DetailLine: fmt.Sprintf("Any further intake %s exceeds your limit.", phrase),
		}
	case domain.LimitWarning:
		return &domain.LimitMessage{
			Title:      "Approaching limit",
			StatusLine: statusLine,
			DetailLine: fmt.Sprintf("%s left before you reach your limit %s.", intakes(limitCount-currentCount), phrase),
		}
	}
	return nil
}

// TrailingWindow returns the days counted for a limit period: today plus the
// preceding days (day=1, week=7, month=30).
func TrailingWindow(periodType domain.PeriodType, today civil.Date) domain.Window {
	return domain.Window{From: today.AddDays(-(periodType.Days() - 1)), To: today}
}

// CountIntakes counts intakes of medicationName inside window. Names are
// compared by MedicationKey.
func CountIntakes(events []domain.HealthEvent, medicationName string, window domain.Window) int {
	key := MedicationKey(medicationName)
	if key == "" {
		return 0
	}

	n := 0
	for _, ev := range events {
		if !window.Contains(ev.Date) {
			continue
		}
		for _, med := range ev.Medications {
			if MedicationKey(med.Name) == key {
				n++
			}
		}
	}
	return n
}

// EvaluateLimit counts usage of limit's medication in its trailing window and
// classifies it.
func EvaluateLimit(limit domain.MedicationLimit, events []domain.HealthEvent, today civil.Date) domain.LimitEvaluation {
	window := TrailingWindow(limit.PeriodType, today)
	count := CountIntakes(events, limit.MedicationName, window)
	status := GetLimitStatus(count, limit.LimitCount)

	return domain.LimitEvaluation{
		Limit:        limit,
		CurrentCount: count,
		Status:       status,
		Window:       window,
		Message:      BuildLimitMessage(status, count, limit.LimitCount, limit.PeriodType, limit.MedicationName),
	}
}

func periodPhrase(p domain.PeriodType) string {
	switch p {
	case domain.PeriodWeek:
		return "in the last 7 days"
	case domain.PeriodMonth:
		return "in the last 30 days"
	}
	return "today"
}

func intakes(n int) string {
	if n == 1 {
		return "1 intake"
	}
	return fmt.Sprintf("%d intakes", n)
}
