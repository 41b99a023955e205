package service

import (
	"context"
	"errors"

	"healthmate-backend/models"

	"github.com/google/uuid"
)

// DefaultListLimit caps timeline and chat history listings when the caller
// does not supply a limit
const DefaultListLimit = 50

// TimelineStore is the persistence surface TimelineService depends on
type TimelineStore interface {
	Create(ctx context.Context, entry *models.TimelineEntry) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TimelineEntry, error)
}

// TimelineService handles the append-only wellness timeline
type TimelineService struct {
	entries TimelineStore
}

// TimelineServiceOption is a functional option for TimelineService
type TimelineServiceOption func(*TimelineService)

// TimelineWithRepository sets the timeline store
func TimelineWithRepository(entries TimelineStore) TimelineServiceOption {
	return func(s *TimelineService) {
		s.entries = entries
	}
}

// NewTimelineService creates a new timeline service
func NewTimelineService(opts ...TimelineServiceOption) *TimelineService {
	s := &TimelineService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppendEntryRequest carries the validated fields for one timeline entry
type AppendEntryRequest struct {
	UserID      uuid.UUID
	EntryType   models.EntryType
	Title       string
	Description *string
	Severity    *int
	Tags        []string
}

// Append stores a new entry with a server-assigned timestamp. Omitted tags
// become an empty list, never null.
func (s *TimelineService) Append(ctx context.Context, req AppendEntryRequest) (*models.TimelineEntry, error) {
	if s.entries == nil {
		return nil, errors.New("timeline repository not set")
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	entry := &models.TimelineEntry{
		UserID:      req.UserID,
		EntryType:   req.EntryType,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Tags:        tags,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// List returns the user's entries newest first, capped at limit (default 50)
func (s *TimelineService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TimelineEntry, error) {
	if s.entries == nil {
		return nil, errors.New("timeline repository not set")
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}

	entries, err := s.entries.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.TimelineEntry{}
	}

	return entries, nil
}
