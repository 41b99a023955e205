package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"healthmate-backend/models"
	"healthmate-backend/repository"

	"github.com/google/uuid"
)

var testBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

type fakeProfileStore struct {
	profiles map[uuid.UUID]*models.HealthProfile
	seq      int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[uuid.UUID]*models.HealthProfile)}
}

func (f *fakeProfileStore) next() time.Time {
	f.seq++
	return testBase.Add(time.Duration(f.seq) * time.Second)
}

func (f *fakeProfileStore) Upsert(ctx context.Context, profile *models.HealthProfile) error {
	now := f.next()
	if existing, ok := f.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = uuid.New()
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *profile
	return &cp, nil
}

type fakeTimelineStore struct {
	entries []*models.TimelineEntry
	seq     int
}

func (f *fakeTimelineStore) Create(ctx context.Context, entry *models.TimelineEntry) error {
	f.seq++
	entry.ID = uuid.New()
	entry.Timestamp = testBase.Add(time.Duration(f.seq) * time.Second)
	stored := *entry
	f.entries = append(f.entries, &stored)
	return nil
}

func (f *fakeTimelineStore) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.TimelineEntry, error) {
	var out []*models.TimelineEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].UserID == userID {
			cp := *f.entries[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeChatStore struct {
	messages []*models.ChatMessage
	seq      int
}

func (f *fakeChatStore) Create(ctx context.Context, msg *models.ChatMessage) error {
	f.seq++
	msg.ID = uuid.New()
	msg.Timestamp = testBase.Add(time.Duration(f.seq) * time.Second)
	stored := *msg
	f.messages = append(f.messages, &stored)
	return nil
}

func (f *fakeChatStore) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	var out []*models.ChatMessage
	for _, msg := range f.messages {
		if len(out) == limit {
			break
		}
		if msg.UserID == userID {
			cp := *msg
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeExportStore struct {
	archives map[uuid.UUID]*models.ExportArchive
	seq      int
}

func newFakeExportStore() *fakeExportStore {
	return &fakeExportStore{archives: make(map[uuid.UUID]*models.ExportArchive)}
}

func (f *fakeExportStore) Create(ctx context.Context, archive *models.ExportArchive) error {
	f.seq++
	archive.CreatedAt = testBase.Add(time.Duration(f.seq) * time.Second)
	stored := *archive
	f.archives[archive.ID] = &stored
	return nil
}

func (f *fakeExportStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.ExportArchive, error) {
	archive, ok := f.archives[id]
	if !ok || archive.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *archive
	return &cp, nil
}

// memStorage is an in-memory storage.Storage for export tests
type memStorage struct {
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (m *memStorage) Upload(ctx context.Context, archiveID uuid.UUID, filename string, data io.Reader) (string, error) {
	body, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	path := archiveID.String() + "/" + filename
	m.objects[path] = body
	return path, nil
}

func (m *memStorage) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	body, ok := m.objects[storagePath]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (m *memStorage) Delete(ctx context.Context, storagePath string) error {
	delete(m.objects, storagePath)
	return nil
}

type llmCall struct {
	SessionID    string
	SystemPrompt string
	Text         string
}

// scriptedLLM returns a fixed reply or error and records every call
type scriptedLLM struct {
	reply string
	err   error
	calls []llmCall
}

func (f *scriptedLLM) SendMessage(ctx context.Context, sessionID, systemPrompt, text string) (string, error) {
	f.calls = append(f.calls, llmCall{SessionID: sessionID, SystemPrompt: systemPrompt, Text: text})
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
