package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/pkg/apperrors"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/internal/service"
	"shared-notes-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) (*gorm.DB, unitofwork.RepositoryFactory) {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	return gormDB, unitofwork.NewRepositoryFactory(gormDB)
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork, prefix string) *entity.User {
	t.Helper()

	user := &entity.User{
		Id:           uuid.New(),
		Username:     prefix + "-" + uuid.New().String()[:8],
		PasswordHash: "x",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))

	t.Cleanup(func() {
		_ = uow.UserRepository().Delete(context.Background(), user.Id)
	})
	return user
}

func TestUnitOfWorkWiring(t *testing.T) {
	gormDB, uowFactory := setupDB(t)

	uow := uowFactory.NewUnitOfWork(context.Background())
	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.TagRepository())
	assert.NotNil(t, uow.NoteShareRepository())
	assert.NotNil(t, uow.ActivityLogRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())
}

func TestShareUpsertKeepsSingleRow(t *testing.T) {
	_, uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	owner := createTestUser(t, uow, "owner")
	sharee := createTestUser(t, uow, "sharee")
	noteSvc := service.NewNoteService(uowFactory, nil)

	note, err := noteSvc.Create(ctx, owner.Id, &dto.CreateNoteRequest{Title: "share target"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = noteSvc.Delete(ctx, owner.Id, note.Id) })

	first, err := noteSvc.Share(ctx, owner.Id, &dto.ShareNoteRequest{NoteId: note.Id, UserId: sharee.Id})
	require.NoError(t, err)
	assert.Equal(t, "read", first.Permission)

	second, err := noteSvc.Share(ctx, owner.Id, &dto.ShareNoteRequest{NoteId: note.Id, UserId: sharee.Id, Permission: "write"})
	require.NoError(t, err)
	assert.Equal(t, "write", second.Permission)

	count, err := uow.NoteShareRepository().Count(ctx, specification.ByNoteAndUser{NoteID: note.Id, UserID: sharee.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "re-sharing must update the existing row, not add another")
}

func TestTagFindOrCreateIdempotent(t *testing.T) {
	_, uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	name := "itest-" + uuid.New().String()[:8]

	first, err := uow.TagRepository().FindOrCreateByName(ctx, name)
	require.NoError(t, err)
	second, err := uow.TagRepository().FindOrCreateByName(ctx, name)
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id, "same name must resolve to the same tag row")
}

func TestReadShareCannotWriteOrDelete(t *testing.T) {
	_, uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	owner := createTestUser(t, uow, "owner")
	reader := createTestUser(t, uow, "reader")
	noteSvc := service.NewNoteService(uowFactory, nil)

	note, err := noteSvc.Create(ctx, owner.Id, &dto.CreateNoteRequest{Title: "locked down", Content: "secret"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = noteSvc.Delete(ctx, owner.Id, note.Id) })

	_, err = noteSvc.Share(ctx, owner.Id, &dto.ShareNoteRequest{NoteId: note.Id, UserId: reader.Id, Permission: "read"})
	require.NoError(t, err)

	// Reading works.
	shown, err := noteSvc.Show(ctx, reader.Id, note.Id)
	require.NoError(t, err)
	assert.Equal(t, "locked down", shown.Title)

	// Writing is forbidden, not hidden: the note is readable.
	_, err = noteSvc.Update(ctx, reader.Id, &dto.UpdateNoteRequest{Id: note.Id, Title: "hijacked"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)

	// Deleting is owner-only and reads as not found.
	err = noteSvc.Delete(ctx, reader.Id, note.Id)
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestUnreadableNoteLooksMissing(t *testing.T) {
	_, uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	owner := createTestUser(t, uow, "owner")
	stranger := createTestUser(t, uow, "stranger")
	noteSvc := service.NewNoteService(uowFactory, nil)

	note, err := noteSvc.Create(ctx, owner.Id, &dto.CreateNoteRequest{Title: "private"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = noteSvc.Delete(ctx, owner.Id, note.Id) })

	_, err = noteSvc.Show(ctx, stranger.Id, note.Id)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status, "a private note must be indistinguishable from a missing one")

	_, err = noteSvc.Show(ctx, stranger.Id, uuid.New())
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestDeleteRemovesSharesButKeepsTags(t *testing.T) {
	_, uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	owner := createTestUser(t, uow, "owner")
	sharee := createTestUser(t, uow, "sharee")
	noteSvc := service.NewNoteService(uowFactory, nil)

	tagName := "itest-" + uuid.New().String()[:8]
	note, err := noteSvc.Create(ctx, owner.Id, &dto.CreateNoteRequest{Title: "doomed", Tags: []string{tagName}})
	require.NoError(t, err)

	_, err = noteSvc.Share(ctx, owner.Id, &dto.ShareNoteRequest{NoteId: note.Id, UserId: sharee.Id})
	require.NoError(t, err)

	require.NoError(t, noteSvc.Delete(ctx, owner.Id, note.Id))

	shareCount, err := uow.NoteShareRepository().Count(ctx, specification.ByNoteID{NoteID: note.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(0), shareCount, "deleting a note must remove its share rows")

	tag, err := uow.TagRepository().FindOrCreateByName(ctx, tagName)
	require.NoError(t, err)
	assert.NotNil(t, tag, "tag records survive note deletion")

	deleted, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestPublicNoteVisibleToEveryone(t *testing.T) {
	_, uowFactory := setupDB(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	owner := createTestUser(t, uow, "owner")
	stranger := createTestUser(t, uow, "stranger")
	noteSvc := service.NewNoteService(uowFactory, nil)

	note, err := noteSvc.Create(ctx, owner.Id, &dto.CreateNoteRequest{Title: "announcement", IsPublic: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = noteSvc.Delete(ctx, owner.Id, note.Id) })

	shown, err := noteSvc.Show(ctx, stranger.Id, note.Id)
	require.NoError(t, err)
	assert.Equal(t, "announcement", shown.Title)

	// Public grants read only.
	_, err = noteSvc.Update(ctx, stranger.Id, &dto.UpdateNoteRequest{Id: note.Id, Title: "defaced"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)
}
