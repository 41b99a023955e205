package models

import (
	"time"

	"github.com/google/uuid"
)

// ExportArchive records one generated data-export snapshot. The archive body
// lives in the configured storage backend; this row only tracks where.
type ExportArchive struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	StoragePath string    `json:"-"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
