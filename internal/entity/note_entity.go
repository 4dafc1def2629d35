package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	IsPublic  bool
	OwnerId   uuid.UUID
	Tags      []*Tag
	CreatedAt time.Time
	UpdatedAt *time.Time
}
