package unitofwork

import (
	"context"

	"shared-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteShareRepository() contract.NoteShareRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
