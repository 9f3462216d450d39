// Package limit implements the medication limit repository using PostgreSQL.
// Limits are unique per user and normalized medication key.
package limit

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/paindiary-backend/internal/analytics"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

const tableLimits = "medication_limits"

var limitColumns = []string{
	"id", "user_id", "medication_name", "limit_count", "period_type", "is_active", "created_at", "updated_at",
}

// Repo provides medication limit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new limit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByUser returns all limits of a user ordered by medication name.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error) {
	return r.list(ctx, sq.Eq{"user_id": userID})
}

// ListActive returns the user's active limits ordered by medication name.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.MedicationLimit, error) {
	return r.list(ctx, sq.Eq{"user_id": userID, "is_active": true})
}

// Upsert creates the limit or replaces the user's existing limit for the
// same medication. The medication is matched by its normalized key, so
// "Sumatriptan" and "sumatriptan" share one limit.
func (r *Repo) Upsert(ctx context.Context, l domain.MedicationLimit) (domain.MedicationLimit, error) {
	key := analytics.MedicationKey(l.MedicationName)

	sql, args, err := postgres.Builder().
		Insert(tableLimits).
		Columns("id", "user_id", "medication_name", "medication_key", "limit_count", "period_type", "is_active", "created_at", "updated_at").
		Values(l.ID, l.UserID, l.MedicationName, key, l.LimitCount, string(l.PeriodType), l.IsActive, l.CreatedAt, l.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, medication_key) DO UPDATE SET
			medication_name = EXCLUDED.medication_name,
			limit_count = EXCLUDED.limit_count,
			period_type = EXCLUDED.period_type,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`).
		Suffix("RETURNING " + strings.Join(limitColumns, ", ")).
		ToSql()
	if err != nil {
		return domain.MedicationLimit{}, fmt.Errorf("build upsert medication_limit: %w", err)
	}

	var row limitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.MedicationLimit{}, postgres.MapError(err, "medication_limit", key)
	}
	return row.toDomain(), nil
}

type limitRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	MedicationName string    `db:"medication_name"`
	LimitCount     int32     `db:"limit_count"`
	PeriodType     string    `db:"period_type"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row limitRow) toDomain() domain.MedicationLimit {
	return domain.MedicationLimit{
		ID:             row.ID,
		UserID:         row.UserID,
		MedicationName: row.MedicationName,
		LimitCount:     int(row.LimitCount),
		PeriodType:     domain.PeriodType(row.PeriodType),
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.MedicationLimit, error) {
	sql, args, err := postgres.Builder().
		Select(limitColumns...).
		From(tableLimits).
		Where(where).
		OrderBy("medication_key", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select medication_limits: %w", err)
	}

	var rows []limitRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select medication_limits: %w", err)
	}

	limits := make([]domain.MedicationLimit, len(rows))
	for i, row := range rows {
		limits[i] = row.toDomain()
	}
	return limits, nil
}
