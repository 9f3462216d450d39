package diary

import (
	"strings"

	"github.com/heartmarshall/paindiary-backend/internal/analytics"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

const maxPageSize = 200

// ListEntriesInput holds parameters for listing entries. Limit 0 uses the
// configured default page size.
type ListEntriesInput struct {
	Limit  int
	Offset int
}

// Validate validates the list entries input.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaveLimitInput holds parameters for creating or replacing a medication limit.
type SaveLimitInput struct {
	MedicationName string
	LimitCount     int
	PeriodType     domain.PeriodType
	// IsActive defaults to true.
	IsActive *bool
}

// Validate validates the save limit input.
func (i SaveLimitInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.MedicationName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "medicationName", Message: "required"})
	} else if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "medicationName", Message: "too long"})
	} else if analytics.MedicationKey(name) == "" {
		errs = append(errs, domain.FieldError{Field: "medicationName", Message: "must contain a letter or digit"})
	}

	if i.LimitCount < 1 || i.LimitCount > 1000 {
		errs = append(errs, domain.FieldError{Field: "limitCount", Message: "must be between 1 and 1000"})
	}

	if !i.PeriodType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "periodType", Message: "must be one of day, week, month"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
