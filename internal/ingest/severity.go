// Package ingest converts raw diary input into domain events. It is the only
// place that accepts the mixed severity encodings found in stored and
// imported entries, and the only place that rejects malformed dates.
package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/paindiary-backend/internal/analytics"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// SeverityKind tells which encoding a SeverityInput carries.
type SeverityKind int

const (
	SeverityAbsent SeverityKind = iota
	SeverityNumeric
	SeverityLabel
)

// SeverityInput is a severity as it arrives from a client or an import:
// absent, a numeric 0–10 score, or one of the legacy labels.
type SeverityInput struct {
	Kind  SeverityKind
	Score float64
	Label string
}

// NumericSeverity returns a numeric severity input.
func NumericSeverity(score float64) SeverityInput {
	return SeverityInput{Kind: SeverityNumeric, Score: score}
}

// LabelSeverity returns a legacy label severity input.
func LabelSeverity(label string) SeverityInput {
	return SeverityInput{Kind: SeverityLabel, Label: label}
}

// UnmarshalJSON accepts null, a JSON number, or a string holding either a
// number or a legacy label. An empty string is absent.
func (s *SeverityInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = SeverityInput{}
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("severity: %w", err)
		}
		*s = parseSeverityString(raw)
		return nil
	}

	var score float64
	if err := json.Unmarshal(data, &score); err != nil {
		return fmt.Errorf("severity: expected number, string or null")
	}
	*s = NumericSeverity(score)
	return nil
}

// MarshalJSON writes the input back in the encoding it was read in.
func (s SeverityInput) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SeverityNumeric:
		return json.Marshal(s.Score)
	case SeverityLabel:
		return json.Marshal(s.Label)
	}
	return []byte("null"), nil
}

func parseSeverityString(raw string) SeverityInput {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SeverityInput{}
	}
	if score, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumericSeverity(score)
	}
	return LabelSeverity(raw)
}

// Normalize converts the input to the canonical score. Absent yields nil,
// never zero. Numeric scores must be finite and within 0–10; labels must be
// one of none, mild, moderate, severe.
func (s SeverityInput) Normalize() (*float64, error) {
	switch s.Kind {
	case SeverityAbsent:
		return nil, nil
	case SeverityNumeric:
		if math.IsNaN(s.Score) || math.IsInf(s.Score, 0) {
			return nil, domain.NewValidationError("severity", "must be a finite number")
		}
		if s.Score < analytics.MinSeverity || s.Score > analytics.MaxSeverity {
			return nil, domain.NewValidationError("severity", "must be between 0 and 10")
		}
		v := s.Score
		return &v, nil
	case SeverityLabel:
		level := domain.SeverityLevel(strings.ToLower(strings.TrimSpace(s.Label)))
		score, ok := analytics.LegacyScores[level]
		if !ok {
			return nil, domain.NewValidationError("severity", "unknown severity label")
		}
		return &score, nil
	}
	return nil, domain.NewValidationError("severity", "unsupported encoding")
}
