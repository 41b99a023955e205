package repository

import (
	"context"

	"healthmate-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimelineEntryRepository handles database operations for timeline entries
type TimelineEntryRepository struct {
	db *pgxpool.Pool
}

// NewTimelineEntryRepository creates a new timeline entry repository
func NewTimelineEntryRepository(db *pgxpool.Pool) *TimelineEntryRepository {
	return &TimelineEntryRepository{db: db}
}

// Create appends a new entry. The database assigns the ID and the server
// timestamp.
func (r *TimelineEntryRepository) Create(ctx context.Context, entry *models.TimelineEntry) error {
	query := `
		INSERT INTO timeline_entries (
			user_id, entry_type, title, description, severity, tags
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, timestamp`

	return r.db.QueryRow(
		ctx, query,
		entry.UserID,
		entry.EntryType,
		entry.Title,
		entry.Description,
		entry.Severity,
		entry.Tags,
	).Scan(&entry.ID, &entry.Timestamp)
}

// ListByUserID retrieves up to limit entries for a user, newest first
func (r *TimelineEntryRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TimelineEntry, error) {
	query := `
		SELECT id, user_id, entry_type, title, description, severity, tags, timestamp
		FROM timeline_entries
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.TimelineEntry
	for rows.Next() {
		entry := &models.TimelineEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.EntryType,
			&entry.Title,
			&entry.Description,
			&entry.Severity,
			&entry.Tags,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
