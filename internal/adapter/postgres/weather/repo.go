// Package weather reads daily weather observations recorded for a user.
package weather

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/paindiary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// Repo provides weather observation reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new weather repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type summaryRow struct {
	Days            int64    `db:"days"`
	AvgTemperatureC *float64 `db:"avg_temperature_c"`
	AvgPressureHPa  *float64 `db:"avg_pressure_hpa"`
	AvgHumidity     *float64 `db:"avg_humidity"`
}

// Summary averages the observations inside window. It returns nil when no
// day of the window has an observation.
func (r *Repo) Summary(ctx context.Context, userID uuid.UUID, window domain.Window) (*domain.WeatherSummary, error) {
	sql, args, err := postgres.Builder().
		Select(
			"COUNT(*) AS days",
			"AVG(temperature_c) AS avg_temperature_c",
			"AVG(pressure_hpa) AS avg_pressure_hpa",
			"AVG(humidity) AS avg_humidity",
		).
		From("weather_observations").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"observed_on": window.From.In(time.UTC)}).
		Where(sq.LtOrEq{"observed_on": window.To.In(time.UTC)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build weather summary: %w", err)
	}

	var row summaryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "weather_summary", userID)
	}
	if row.Days == 0 {
		return nil, nil
	}

	return &domain.WeatherSummary{
		Days:            int(row.Days),
		AvgTemperatureC: row.AvgTemperatureC,
		AvgPressureHPa:  row.AvgPressureHPa,
		AvgHumidity:     row.AvgHumidity,
	}, nil
}
