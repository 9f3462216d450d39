package report

import (
	"context"
	"fmt"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/pkg/ctxutil"
)

const (
	defaultExportHistory = 20
	maxExportHistory     = 100
)

// ListExports returns the caller's most recent clinician exports, newest
// first. limit 0 uses the default of 20.
func (s *Service) ListExports(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit < 0 || limit > maxExportHistory {
		return nil, domain.NewValidationError("limit", "must be between 0 and 100")
	}
	if limit == 0 {
		limit = defaultExportHistory
	}
	if s.audit == nil {
		return []domain.ExportRecord{}, nil
	}

	records, err := s.audit.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return records, nil
}
