package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/paindiary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with an empty user_settings row.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO user_settings (user_id, updated_at) VALUES ($1, $2)`,
		user.ID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_settings: %v", err)
	}

	return user
}

// SeedEvent inserts a health event without time of day and returns its ID.
// A nil severity stores an undocumented entry.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, day civil.Date, severity *float64, medications ...string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO health_events (id, user_id, event_date, severity, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, userID, day.In(time.UTC), severity, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert health_event: %v", err)
	}

	for i, name := range medications {
		_, err := pool.Exec(ctx,
			`INSERT INTO event_medications (event_id, position, name) VALUES ($1, $2, $3)`,
			id, i, name,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedEvent insert event_medication: %v", err)
		}
	}

	return id
}

// SeedWeather inserts one daily weather observation.
func SeedWeather(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, day civil.Date, temperatureC, pressureHPa, humidity float64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO weather_observations (user_id, observed_on, temperature_c, pressure_hpa, humidity)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, day.In(time.UTC), temperatureC, pressureHPa, humidity,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWeather insert: %v", err)
	}
}
