package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"time"

	"healthmate-backend/models"
	"healthmate-backend/repository"
	"healthmate-backend/storage"

	"github.com/google/uuid"
)

// ErrExportNotFound is returned when an archive does not exist or belongs to
// another user
var ErrExportNotFound = errors.New("export archive not found")

// exportSnapshotLimit bounds how many timeline entries and chat messages one
// archive captures
const exportSnapshotLimit = 1000

// ExportStore is the persistence surface ExportService depends on
type ExportStore interface {
	Create(ctx context.Context, archive *models.ExportArchive) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.ExportArchive, error)
}

// ExportService builds downloadable JSON snapshots of a user's data
type ExportService struct {
	profiles ProfileStore
	entries  TimelineStore
	messages ChatStore
	archives ExportStore
	files    storage.Storage
}

// ExportServiceOption is a functional option for ExportService
type ExportServiceOption func(*ExportService)

// ExportWithProfileRepository sets the profile store
func ExportWithProfileRepository(profiles ProfileStore) ExportServiceOption {
	return func(s *ExportService) {
		s.profiles = profiles
	}
}

// ExportWithTimelineRepository sets the timeline store
func ExportWithTimelineRepository(entries TimelineStore) ExportServiceOption {
	return func(s *ExportService) {
		s.entries = entries
	}
}

// ExportWithMessageRepository sets the chat message store
func ExportWithMessageRepository(messages ChatStore) ExportServiceOption {
	return func(s *ExportService) {
		s.messages = messages
	}
}

// ExportWithArchiveRepository sets the archive store
func ExportWithArchiveRepository(archives ExportStore) ExportServiceOption {
	return func(s *ExportService) {
		s.archives = archives
	}
}

// ExportWithStorage sets the blob storage backend
func ExportWithStorage(files storage.Storage) ExportServiceOption {
	return func(s *ExportService) {
		s.files = files
	}
}

// NewExportService creates a new export service
func NewExportService(opts ...ExportServiceOption) *ExportService {
	s := &ExportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// exportDocument is the archive body written to storage
type exportDocument struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Profile     *models.HealthProfile   `json:"profile"`
	Timeline    []*models.TimelineEntry `json:"timeline"`
	Chat        []*models.ChatMessage   `json:"chat"`
}

// CreateArchive snapshots the user's profile, timeline and chat history into
// a JSON document in the storage backend and records it
func (s *ExportService) CreateArchive(ctx context.Context, userID uuid.UUID) (*models.ExportArchive, error) {
	if s.archives == nil || s.files == nil {
		return nil, errors.New("export service not fully configured")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByUserID(ctx, userID, exportSnapshotLimit)
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.ListByUserID(ctx, userID, exportSnapshotLimit)
	if err != nil {
		return nil, err
	}

	doc := exportDocument{
		GeneratedAt: time.Now().UTC(),
		Profile:     profile,
		Timeline:    entries,
		Chat:        messages,
	}
	if doc.Timeline == nil {
		doc.Timeline = []*models.TimelineEntry{}
	}
	if doc.Chat == nil {
		doc.Chat = []*models.ChatMessage{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	archiveID := uuid.New()
	path, err := s.files.Upload(ctx, archiveID, "health_export.json", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	archive := &models.ExportArchive{
		ID:          archiveID,
		UserID:      userID,
		StoragePath: path,
		SizeBytes:   int64(len(data)),
	}
	if err := s.archives.Create(ctx, archive); err != nil {
		// The blob is orphaned if this cleanup fails; the row is the source
		// of truth either way.
		if delErr := s.files.Delete(ctx, path); delErr != nil {
			log.Printf("Failed to clean up orphaned export %s: %v", path, delErr)
		}
		return nil, err
	}

	return archive, nil
}

// OpenArchive returns the archive record and a reader over its JSON body.
// The caller owns closing the reader.
func (s *ExportService) OpenArchive(ctx context.Context, id, userID uuid.UUID) (*models.ExportArchive, io.ReadCloser, error) {
	if s.archives == nil || s.files == nil {
		return nil, nil, errors.New("export service not fully configured")
	}

	archive, err := s.archives.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrExportNotFound
		}
		return nil, nil, err
	}

	body, err := s.files.Download(ctx, archive.StoragePath)
	if err != nil {
		return nil, nil, err
	}

	return archive, body, nil
}
