package contract

import (
	"context"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceTags swaps the note's tag set; ClearTags removes the join
	// rows without touching tag records.
	ReplaceTags(ctx context.Context, noteId uuid.UUID, tags []*entity.Tag) error
	ClearTags(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
