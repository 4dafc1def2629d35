package model

import (
	"time"

	"github.com/google/uuid"
)

// The composite unique index backs the atomic share upsert:
// ON CONFLICT (note_id, user_id) DO UPDATE SET permission.
type NoteShare struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_shares_note_user;constraint:OnDelete:CASCADE"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_shares_note_user;index"`
	Permission string    `gorm:"type:varchar(20);not null;default:'read'"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (NoteShare) TableName() string {
	return "note_shares"
}
