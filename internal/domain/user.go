package domain

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// User represents an authenticated diary owner.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSettings holds per-user tracking preferences.
type UserSettings struct {
	UserID        uuid.UUID
	TrackingStart *civil.Date // explicit start of tracking; nil falls back to the earliest entry
	UpdatedAt     time.Time
}
