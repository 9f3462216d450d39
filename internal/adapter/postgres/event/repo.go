// Package event implements the health event repository using PostgreSQL.
// An event row owns its medication intakes, stored in event_medications in
// submission order.
package event

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

const (
	tableEvents      = "health_events"
	tableMedications = "event_medications"
)

var eventColumns = []string{
	"e.id", "e.user_id", "e.event_date", "e.event_time", "e.severity",
	"e.notes", "e.aura", "e.pain_locations", "e.created_at",
}

// canonicalOrder matches analytics.CompareEntries.
var canonicalOrder = []string{
	"e.event_date DESC",
	"COALESCE(e.event_time, TIME '23:59:59') DESC",
	"e.created_at DESC",
	"e.id DESC",
}

// Repo provides health event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByWindow returns the user's events whose calendar day lies inside
// window, in canonical order, with their medications.
func (r *Repo) ListByWindow(ctx context.Context, userID uuid.UUID, window domain.Window) ([]domain.HealthEvent, error) {
	query := postgres.Builder().
		Select(eventColumns...).
		From(tableEvents + " e").
		Where(sq.Eq{"e.user_id": userID}).
		Where(sq.GtOrEq{"e.event_date": dateArg(window.From)}).
		Where(sq.LtOrEq{"e.event_date": dateArg(window.To)}).
		OrderBy(canonicalOrder...)

	return r.list(ctx, query)
}

// ListPage returns one page of the user's events in canonical order and the
// total number of events.
func (r *Repo) ListPage(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.HealthEvent, int, error) {
	total, err := r.Count(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	query := postgres.Builder().
		Select(eventColumns...).
		From(tableEvents + " e").
		Where(sq.Eq{"e.user_id": userID}).
		OrderBy(canonicalOrder...).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	events, err := r.list(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Count returns the number of events of a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(tableEvents).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count health_events: %w", err)
	}

	var count int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count health_events: %w", err)
	}
	return int(count), nil
}

// EarliestDate returns the calendar day of the user's oldest event, or nil if
// the user has no events.
func (r *Repo) EarliestDate(ctx context.Context, userID uuid.UUID) (*civil.Date, error) {
	sql, args, err := postgres.Builder().
		Select("MIN(event_date)").
		From(tableEvents).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build earliest health_event: %w", err)
	}

	var earliest *time.Time
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&earliest); err != nil {
		return nil, fmt.Errorf("earliest health_event: %w", err)
	}
	if earliest == nil {
		return nil, nil
	}
	d := civil.DateOf(*earliest)
	return &d, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an event and its medications. The caller runs it inside a
// transaction so both inserts commit together.
func (r *Repo) Create(ctx context.Context, ev domain.HealthEvent) (domain.HealthEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	locations := ev.PainLocations
	if locations == nil {
		locations = []string{}
	}

	sql, args, err := postgres.Builder().
		Insert(tableEvents).
		Columns("id", "user_id", "event_date", "event_time", "severity", "notes", "aura", "pain_locations", "created_at").
		Values(ev.ID, ev.UserID, dateArg(ev.Date), timeArg(ev.Time), ev.Severity, ev.Notes, ev.Aura, locations, ev.CreatedAt).
		ToSql()
	if err != nil {
		return domain.HealthEvent{}, fmt.Errorf("build insert health_event: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.HealthEvent{}, postgres.MapError(err, "health_event", ev.ID)
	}

	if len(ev.Medications) > 0 {
		insert := postgres.Builder().
			Insert(tableMedications).
			Columns("event_id", "position", "name", "effectiveness")
		for i, med := range ev.Medications {
			insert = insert.Values(ev.ID, i, med.Name, med.Effectiveness)
		}

		sql, args, err := insert.ToSql()
		if err != nil {
			return domain.HealthEvent{}, fmt.Errorf("build insert event_medications: %w", err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return domain.HealthEvent{}, postgres.MapError(err, "event_medications", ev.ID)
		}
	}

	ev.PainLocations = locations
	return ev, nil
}

// Delete removes an event of the user together with its medications.
// Returns domain.ErrNotFound if the event does not exist or belongs to
// another user.
func (r *Repo) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(tableEvents).
		Where(sq.Eq{"id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete health_event: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "health_event", eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("health_event %s: %w", eventID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type eventRow struct {
	ID            uuid.UUID   `db:"id"`
	UserID        uuid.UUID   `db:"user_id"`
	EventDate     time.Time   `db:"event_date"`
	EventTime     pgtype.Time `db:"event_time"`
	Severity      *float64    `db:"severity"`
	Notes         *string     `db:"notes"`
	Aura          *bool       `db:"aura"`
	PainLocations []string    `db:"pain_locations"`
	CreatedAt     time.Time   `db:"created_at"`
}

type medicationRow struct {
	EventID       uuid.UUID `db:"event_id"`
	Name          string    `db:"name"`
	Effectiveness *int32    `db:"effectiveness"`
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.HealthEvent, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select health_events: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []eventRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select health_events: %w", err)
	}
	if len(rows) == 0 {
		return []domain.HealthEvent{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	meds, err := r.loadMedications(ctx, q, ids)
	if err != nil {
		return nil, err
	}

	events := make([]domain.HealthEvent, len(rows))
	for i, row := range rows {
		events[i] = toDomainEvent(row, meds[row.ID])
	}
	return events, nil
}

func (r *Repo) loadMedications(ctx context.Context, q postgres.Querier, eventIDs []uuid.UUID) (map[uuid.UUID][]domain.MedicationIntake, error) {
	sql, args, err := postgres.Builder().
		Select("event_id", "name", "effectiveness").
		From(tableMedications).
		Where(sq.Eq{"event_id": eventIDs}).
		OrderBy("event_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select event_medications: %w", err)
	}

	var rows []medicationRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select event_medications: %w", err)
	}

	out := make(map[uuid.UUID][]domain.MedicationIntake, len(eventIDs))
	for _, row := range rows {
		intake := domain.MedicationIntake{Name: row.Name}
		if row.Effectiveness != nil {
			v := int(*row.Effectiveness)
			intake.Effectiveness = &v
		}
		out[row.EventID] = append(out[row.EventID], intake)
	}
	return out, nil
}

func toDomainEvent(row eventRow, meds []domain.MedicationIntake) domain.HealthEvent {
	return domain.HealthEvent{
		ID:            row.ID,
		UserID:        row.UserID,
		Date:          civil.DateOf(row.EventDate),
		Time:          fromPgTime(row.EventTime),
		Severity:      row.Severity,
		Medications:   meds,
		Notes:         row.Notes,
		Aura:          row.Aura,
		PainLocations: row.PainLocations,
		CreatedAt:     row.CreatedAt,
	}
}

func dateArg(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func timeArg(t *civil.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	us := int64(t.Hour)*3600e6 + int64(t.Minute)*60e6 + int64(t.Second)*1e6 + int64(t.Nanosecond)/1e3
	return pgtype.Time{Microseconds: us, Valid: true}
}

func fromPgTime(t pgtype.Time) *civil.Time {
	if !t.Valid {
		return nil
	}
	us := t.Microseconds
	ct := civil.Time{
		Hour:       int(us / 3600e6),
		Minute:     int(us / 60e6 % 60),
		Second:     int(us / 1e6 % 60),
		Nanosecond: int(us%1e6) * 1000,
	}
	return &ct
}
