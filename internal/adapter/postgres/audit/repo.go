// Package audit implements the export audit repository using PostgreSQL.
// It provides append-only operations for disclosure records.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

const tableExportAudit = "export_audit"

var auditColumns = []string{
	"id", "user_id", "scope", "preset", "window_from", "window_to", "entry_count", "notes_redacted", "created_at",
}

// Repo provides export audit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends a disclosure record.
func (r *Repo) Log(ctx context.Context, rec domain.ExportRecord) error {
	sql, args, err := postgres.Builder().
		Insert(tableExportAudit).
		Columns(auditColumns...).
		Values(
			rec.ID, rec.UserID, rec.Scope, string(rec.Preset),
			rec.Window.From.In(time.UTC), rec.Window.To.In(time.UTC),
			rec.EntryCount, rec.NotesRedacted, rec.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert export_audit: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "export_audit", rec.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the user's most recent disclosure records, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ExportRecord, error) {
	sql, args, err := postgres.Builder().
		Select(auditColumns...).
		From(tableExportAudit).
		Where("user_id = ?", userID).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select export_audit: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select export_audit: %w", err)
	}

	records := make([]domain.ExportRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

type auditRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Scope         string    `db:"scope"`
	Preset        string    `db:"preset"`
	WindowFrom    time.Time `db:"window_from"`
	WindowTo      time.Time `db:"window_to"`
	EntryCount    int       `db:"entry_count"`
	NotesRedacted bool      `db:"notes_redacted"`
	CreatedAt     time.Time `db:"created_at"`
}

func (row auditRow) toDomain() domain.ExportRecord {
	return domain.ExportRecord{
		ID:     row.ID,
		UserID: row.UserID,
		Scope:  row.Scope,
		Preset: domain.Preset(row.Preset),
		Window: domain.Window{
			From: civil.DateOf(row.WindowFrom),
			To:   civil.DateOf(row.WindowTo),
		},
		EntryCount:    row.EntryCount,
		NotesRedacted: row.NotesRedacted,
		CreatedAt:     row.CreatedAt,
	}
}
