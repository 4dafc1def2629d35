package contract

import (
	"context"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TagRepository interface {
	// FindOrCreateByName resolves a normalized name to a tag, creating
	// it on first use. Concurrent first uses resolve to the same row.
	FindOrCreateByName(ctx context.Context, name string) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	// FindAllForOwner returns the distinct tags used on the owner's
	// notes, ordered alphabetically.
	FindAllForOwner(ctx context.Context, ownerId uuid.UUID) ([]*entity.Tag, error)
}
