package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryType represents the kind of timeline entry
type EntryType string

const (
	EntrySymptom   EntryType = "symptom"
	EntryMood      EntryType = "mood"
	EntryMedicine  EntryType = "medicine"
	EntrySleep     EntryType = "sleep"
	EntryHydration EntryType = "hydration"
	EntryNote      EntryType = "note"
)

// Valid reports whether the value is a recognized entry type
func (e EntryType) Valid() bool {
	switch e {
	case EntrySymptom, EntryMood, EntryMedicine, EntrySleep, EntryHydration, EntryNote:
		return true
	}
	return false
}

// TimelineEntry is one self-reported wellness event. Entries are append-only;
// the timestamp is assigned by the server at insertion and never changes.
// Severity is meaningful only for "symptom" entries.
type TimelineEntry struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	EntryType   EntryType `json:"entry_type"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Severity    *int      `json:"severity"`
	Tags        []string  `json:"tags"`
	Timestamp   time.Time `json:"timestamp"`
}
