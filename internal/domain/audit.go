package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportRecord is an append-only disclosure entry written for every clinician
// export of a diary.
type ExportRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Scope         string // scope of the token that requested the export
	Preset        Preset
	Window        Window
	EntryCount    int
	NotesRedacted bool
	CreatedAt     time.Time
}
