package repository

import (
	"context"
	"errors"

	"healthmate-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportArchiveRepository handles database operations for export archives
type ExportArchiveRepository struct {
	db *pgxpool.Pool
}

// NewExportArchiveRepository creates a new export archive repository
func NewExportArchiveRepository(db *pgxpool.Pool) *ExportArchiveRepository {
	return &ExportArchiveRepository{db: db}
}

// Create records a generated archive. The caller assigns the ID because the
// storage path embeds it before the row exists.
func (r *ExportArchiveRepository) Create(ctx context.Context, archive *models.ExportArchive) error {
	query := `
		INSERT INTO export_archives (id, user_id, storage_path, size_bytes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		archive.ID,
		archive.UserID,
		archive.StoragePath,
		archive.SizeBytes,
	).Scan(&archive.CreatedAt)
}

// GetByID retrieves an archive, scoped to its owner. Another user's archive
// ID behaves exactly like a missing one.
func (r *ExportArchiveRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.ExportArchive, error) {
	archive := &models.ExportArchive{}
	query := `
		SELECT id, user_id, storage_path, size_bytes, created_at
		FROM export_archives
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&archive.ID,
		&archive.UserID,
		&archive.StoragePath,
		&archive.SizeBytes,
		&archive.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return archive, nil
}
