package report

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/paindiary-backend/internal/analytics"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/pkg/ctxutil"
)

// GetLimitStatuses evaluates every active limit of the calling user against
// the trailing window of its period, ending today.
func (s *Service) GetLimitStatuses(ctx context.Context) ([]domain.LimitEvaluation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := s.Today()
	// The longest period covers every shorter trailing window.
	window := analytics.TrailingWindow(domain.PeriodMonth, today)

	var (
		limits []domain.MedicationLimit
		events []domain.HealthEvent
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		limits, err = s.limits.ListActive(gctx, userID)
		if err != nil {
			return fmt.Errorf("list active limits: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		events, err = s.events.ListByWindow(gctx, userID, window)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	evaluations := make([]domain.LimitEvaluation, 0, len(limits))
	for _, l := range limits {
		eval := analytics.EvaluateLimit(l, events, today)
		evaluations = append(evaluations, eval)
		if s.metrics != nil {
			s.metrics.LimitEvaluated(eval.Status.String())
		}
		if eval.Status != domain.LimitSafe {
			s.log.InfoContext(ctx, "medication limit not safe",
				slog.String("medication", l.MedicationName),
				slog.String("status", eval.Status.String()),
				slog.Int("count", eval.CurrentCount),
				slog.Int("limit", l.LimitCount),
			)
		}
	}

	return evaluations, nil
}
