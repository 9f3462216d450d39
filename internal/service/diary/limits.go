package diary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/pkg/ctxutil"
)

// ListLimits returns every medication limit of the calling user.
func (s *Service) ListLimits(ctx context.Context) ([]domain.MedicationLimit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	limits, err := s.limits.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list limits: %w", err)
	}
	return limits, nil
}

// SaveLimit creates the limit, or replaces the existing limit for the same
// medication.
func (s *Service) SaveLimit(ctx context.Context, in SaveLimitInput) (*domain.MedicationLimit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now().UTC()
	saved, err := s.limits.Upsert(ctx, domain.MedicationLimit{
		ID:             uuid.New(),
		UserID:         userID,
		MedicationName: strings.Join(strings.Fields(in.MedicationName), " "),
		LimitCount:     in.LimitCount,
		PeriodType:     in.PeriodType,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("save limit: %w", err)
	}

	s.log.InfoContext(ctx, "medication limit saved",
		slog.String("user_id", userID.String()),
		slog.String("medication", saved.MedicationName),
		slog.Int("limit", saved.LimitCount),
		slog.String("period", saved.PeriodType.String()),
	)
	return &saved, nil
}
