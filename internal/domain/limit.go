package domain

import (
	"time"

	"github.com/google/uuid"
)

// MedicationLimit is a user-configured usage cap for one medication.
type MedicationLimit struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	MedicationName string
	LimitCount     int
	PeriodType     PeriodType
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LimitMessage is the structured warning text shown for a non-safe status.
type LimitMessage struct {
	Title      string
	StatusLine string
	DetailLine string
}

// LimitEvaluation is the result of checking one limit against current usage.
type LimitEvaluation struct {
	Limit        MedicationLimit
	CurrentCount int
	Status       LimitStatus
	Window       Window
	Message      *LimitMessage
}
