// Package user implements the user and user-settings repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

var userColumns = []string{"id", "email", "name", "created_at", "updated_at"}

// Repo provides user and user-settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, sq.Eq{"email": email}, email)
}

// Create inserts a new user together with an empty settings row.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email, u.Name, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	sql, args, err = postgres.Builder().
		Insert("user_settings").
		Columns("user_id", "updated_at").
		Values(u.ID, u.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user_settings: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_settings", u.ID)
	}

	return &u, nil
}

// LockUser takes a row lock on the user until the surrounding transaction
// ends. Outside a transaction the lock is released immediately.
func (r *Repo) LockUser(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Select("id").
		From("users").
		Where(sq.Eq{"id": userID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock user: %w", err)
	}

	var id uuid.UUID
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &id, sql, args...); err != nil {
		return postgres.MapError(err, "user", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// UserSettings operations
// ---------------------------------------------------------------------------

// GetSettings returns the settings for the given user.
func (r *Repo) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	sql, args, err := postgres.Builder().
		Select("user_id", "tracking_start_date", "updated_at").
		From("user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user_settings: %w", err)
	}

	var row settingsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return row.toDomain(), nil
}

// GetTrackingStart returns the user's tracking start date, or nil when none
// has been recorded.
func (r *Repo) GetTrackingStart(ctx context.Context, userID uuid.UUID) (*civil.Date, error) {
	s, err := r.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.TrackingStart, nil
}

// EnsureTrackingStart moves the tracking start back to day if it is unset or
// later than day. It never moves the start forward.
func (r *Repo) EnsureTrackingStart(ctx context.Context, userID uuid.UUID, day civil.Date) error {
	sql, args, err := postgres.Builder().
		Insert("user_settings").
		Columns("user_id", "tracking_start_date", "updated_at").
		Values(userID, day.In(time.UTC), time.Now().UTC()).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			tracking_start_date = LEAST(user_settings.tracking_start_date, EXCLUDED.tracking_start_date),
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert user_settings: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user_settings", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type settingsRow struct {
	UserID            uuid.UUID  `db:"user_id"`
	TrackingStartDate *time.Time `db:"tracking_start_date"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (row settingsRow) toDomain() *domain.UserSettings {
	s := &domain.UserSettings{UserID: row.UserID, UpdatedAt: row.UpdatedAt}
	if row.TrackingStartDate != nil {
		d := civil.DateOf(*row.TrackingStartDate)
		s.TrackingStart = &d
	}
	return s
}

func (r *Repo) get(ctx context.Context, where sq.Eq, key any) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return &domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
