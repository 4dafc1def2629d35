package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteShare is an explicit grant from a note's owner to another user.
// At most one row exists per (note, user); re-sharing updates in place.
type NoteShare struct {
	Id         uuid.UUID
	NoteId     uuid.UUID
	UserId     uuid.UUID
	Permission Permission
	CreatedAt  time.Time
}
