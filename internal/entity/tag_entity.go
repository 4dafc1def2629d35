package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag names are stored lowercased; normalization happens in pkg/tags
// before a name ever reaches the repository.
type Tag struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
}
