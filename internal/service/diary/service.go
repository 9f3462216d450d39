// Package diary records, lists and deletes diary entries and manages the
// user's medication limits.
package diary

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// eventRepo defines the event repository interface needed by diary service.
type eventRepo interface {
	Create(ctx context.Context, ev domain.HealthEvent) (domain.HealthEvent, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
	ListPage(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.HealthEvent, int, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

// settingsRepo defines the settings repository interface needed by diary service.
type settingsRepo interface {
	LockUser(ctx context.Context, userID uuid.UUID) error
	EnsureTrackingStart(ctx context.Context, userID uuid.UUID, day civil.Date) error
}

// limitRepo defines the limit repository interface needed by diary service.
type limitRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error)
	Upsert(ctx context.Context, l domain.MedicationLimit) (domain.MedicationLimit, error)
}

// txManager defines the transaction manager interface needed by diary service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// trackingCache is invalidated whenever a user's entries change.
type trackingCache interface {
	Forget(userID uuid.UUID)
}

// entryCounter counts created entries.
type entryCounter interface {
	EntryCreated()
}

// Options configures diary limits.
type Options struct {
	MaxEntriesPerUser int
	DefaultPageSize   int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service implements diary entry and medication limit operations.
type Service struct {
	log      *slog.Logger
	events   eventRepo
	settings settingsRepo
	limits   limitRepo
	tx       txManager
	cache    trackingCache
	counter  entryCounter

	maxEntries      int
	defaultPageSize int
	now             func() time.Time
}

// NewService creates a new diary service instance. counter may be nil.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	settings settingsRepo,
	limits limitRepo,
	tx txManager,
	cache trackingCache,
	counter entryCounter,
	opts Options,
) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	pageSize := opts.DefaultPageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	return &Service{
		log:             logger.With("service", "diary"),
		events:          events,
		settings:        settings,
		limits:          limits,
		tx:              tx,
		cache:           cache,
		counter:         counter,
		maxEntries:      opts.MaxEntriesPerUser,
		defaultPageSize: pageSize,
		now:             now,
	}
}
