package service

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"healthmate-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExportService(profiles *fakeProfileStore, entries *fakeTimelineStore, messages *fakeChatStore, archives *fakeExportStore, files *memStorage) *ExportService {
	return NewExportService(
		ExportWithProfileRepository(profiles),
		ExportWithTimelineRepository(entries),
		ExportWithMessageRepository(messages),
		ExportWithArchiveRepository(archives),
		ExportWithStorage(files),
	)
}

func TestCreateArchiveSnapshotsUserData(t *testing.T) {
	profiles := newFakeProfileStore()
	entries := &fakeTimelineStore{}
	messages := &fakeChatStore{}
	files := newMemStorage()
	svc := newTestExportService(profiles, entries, messages, newFakeExportStore(), files)

	userID := uuid.New()
	require.NoError(t, profiles.Upsert(context.Background(), &models.HealthProfile{
		UserID:        userID,
		SleepPattern:  models.SleepNightOwl,
		HealthPersona: "Night Owl Strategist",
	}))
	require.NoError(t, entries.Create(context.Background(), &models.TimelineEntry{
		UserID: userID, EntryType: models.EntryMood, Title: "tired", Tags: []string{},
	}))
	require.NoError(t, messages.Create(context.Background(), &models.ChatMessage{
		UserID: userID, Role: models.RoleUser, Content: "hello",
	}))

	archive, err := svc.CreateArchive(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, archive.UserID)
	assert.Greater(t, archive.SizeBytes, int64(0))

	body, ok := files.objects[archive.StoragePath]
	require.True(t, ok)

	var doc struct {
		Profile  *models.HealthProfile   `json:"profile"`
		Timeline []*models.TimelineEntry `json:"timeline"`
		Chat     []*models.ChatMessage   `json:"chat"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	require.NotNil(t, doc.Profile)
	assert.Equal(t, "Night Owl Strategist", doc.Profile.HealthPersona)
	require.Len(t, doc.Timeline, 1)
	assert.Equal(t, "tired", doc.Timeline[0].Title)
	require.Len(t, doc.Chat, 1)
}

func TestCreateArchiveForEmptyUser(t *testing.T) {
	files := newMemStorage()
	svc := newTestExportService(newFakeProfileStore(), &fakeTimelineStore{}, &fakeChatStore{}, newFakeExportStore(), files)

	archive, err := svc.CreateArchive(context.Background(), uuid.New())
	require.NoError(t, err)

	var doc struct {
		Profile  *models.HealthProfile   `json:"profile"`
		Timeline []*models.TimelineEntry `json:"timeline"`
		Chat     []*models.ChatMessage   `json:"chat"`
	}
	require.NoError(t, json.Unmarshal(files.objects[archive.StoragePath], &doc))
	assert.Nil(t, doc.Profile)
	require.NotNil(t, doc.Timeline)
	assert.Empty(t, doc.Timeline)
	require.NotNil(t, doc.Chat)
	assert.Empty(t, doc.Chat)
}

func TestOpenArchiveScopedToOwner(t *testing.T) {
	svc := newTestExportService(newFakeProfileStore(), &fakeTimelineStore{}, &fakeChatStore{}, newFakeExportStore(), newMemStorage())

	owner := uuid.New()
	archive, err := svc.CreateArchive(context.Background(), owner)
	require.NoError(t, err)

	got, body, err := svc.OpenArchive(context.Background(), archive.ID, owner)
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, archive.ID, got.ID)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// Another user's lookup behaves like a missing archive
	_, _, err = svc.OpenArchive(context.Background(), archive.ID, uuid.New())
	assert.ErrorIs(t, err, ErrExportNotFound)
}
