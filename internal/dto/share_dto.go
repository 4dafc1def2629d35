package dto

import (
	"time"

	"github.com/google/uuid"
)

type ShareNoteRequest struct {
	NoteId     uuid.UUID `json:"-"`
	UserId     uuid.UUID `json:"user_id" validate:"required"`
	Permission string    `json:"permission" validate:"omitempty,oneof=read write admin"`
}

type ShareResponse struct {
	NoteId     uuid.UUID `json:"note_id"`
	UserId     uuid.UUID `json:"user_id"`
	Permission string    `json:"permission"`
	CreatedAt  time.Time `json:"created_at"`
}
