package contract

import (
	"context"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteShareRepository interface {
	// Upsert inserts the share or, when a row for (note, user) already
	// exists, updates its permission in a single statement.
	Upsert(ctx context.Context, share *entity.NoteShare) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByNote(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteShare, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteShare, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
