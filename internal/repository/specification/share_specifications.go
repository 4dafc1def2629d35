package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

type ByShareUser struct {
	UserID uuid.UUID
}

func (s ByShareUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByNoteAndUser struct {
	NoteID uuid.UUID
	UserID uuid.UUID
}

func (s ByNoteAndUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ? AND user_id = ?", s.NoteID, s.UserID)
}
