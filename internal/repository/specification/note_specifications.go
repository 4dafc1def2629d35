package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.owner_id = ?", s.UserID)
}

type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.is_public = ?", true)
}

// AccessibleToUser matches notes the user owns or that are shared with
// them. The LEFT JOIN keeps owned notes without any share rows; Distinct
// guards against duplicates should the join ever fan out.
type AccessibleToUser struct {
	UserID uuid.UUID
}

func (s AccessibleToUser) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("LEFT JOIN note_shares ON note_shares.note_id = notes.id AND note_shares.user_id = ?", s.UserID).
		Where("notes.owner_id = ? OR note_shares.user_id = ?", s.UserID, s.UserID).
		Distinct("notes.*")
}

// SharedWithUser matches only notes granted through a share row.
type SharedWithUser struct {
	UserID uuid.UUID
}

func (s SharedWithUser) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN note_shares ON note_shares.note_id = notes.id").
		Where("note_shares.user_id = ?", s.UserID)
}

// NoteSearchQuery filters notes by title or content (case-insensitive).
type NoteSearchQuery struct {
	Query string
}

func (s NoteSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("notes.title ILIKE ? OR notes.content ILIKE ?", pattern, pattern)
}

// HasTag filters notes carrying the given normalized tag name.
type HasTag struct {
	Name string
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Joins("JOIN tags ON tags.id = note_tags.tag_id").
		Where("tags.name = ?", s.Name)
}
