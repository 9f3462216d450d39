package diary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
	"github.com/heartmarshall/paindiary-backend/internal/ingest"
	"github.com/heartmarshall/paindiary-backend/pkg/ctxutil"
)

// EntryPage is one page of entries in canonical order.
type EntryPage struct {
	Entries []domain.HealthEvent
	Total   int
	Limit   int
	Offset  int
}

// CreateEntry validates and stores a new entry for the calling user and moves
// the tracking start back when the entry predates it.
func (s *Service) CreateEntry(ctx context.Context, in ingest.EventInput) (*domain.HealthEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ev, err := in.ToEvent(userID)
	if err != nil {
		return nil, err
	}
	ev.ID = uuid.New()
	ev.CreatedAt = s.now().UTC()

	var created domain.HealthEvent
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if s.maxEntries > 0 {
			// Concurrent creates of one user queue on the user row until commit.
			if err := s.settings.LockUser(ctx, userID); err != nil {
				return fmt.Errorf("lock user: %w", err)
			}
			count, err := s.events.Count(ctx, userID)
			if err != nil {
				return fmt.Errorf("count entries: %w", err)
			}
			if count >= s.maxEntries {
				return domain.NewValidationError("entry", fmt.Sprintf("entry limit of %d reached", s.maxEntries))
			}
		}

		var txErr error
		created, txErr = s.events.Create(ctx, ev)
		if txErr != nil {
			return fmt.Errorf("create entry: %w", txErr)
		}
		if txErr = s.settings.EnsureTrackingStart(ctx, userID, created.Date); txErr != nil {
			return fmt.Errorf("update tracking start: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Forget(userID)
	if s.counter != nil {
		s.counter.EntryCreated()
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("date", created.Date.String()),
		slog.Int("medications", len(created.Medications)),
	)

	return &created, nil
}

// ListEntries returns one page of the calling user's entries, newest first.
func (s *Service) ListEntries(ctx context.Context, in ListEntriesInput) (*EntryPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit == 0 {
		limit = s.defaultPageSize
	}

	entries, total, err := s.events.ListPage(ctx, userID, limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return &EntryPage{Entries: entries, Total: total, Limit: limit, Offset: in.Offset}, nil
}

// DeleteEntry removes one entry of the calling user.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.events.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	s.cache.Forget(userID)

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)
	return nil
}
