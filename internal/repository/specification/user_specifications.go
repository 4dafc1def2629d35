package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// UsernameContains does a case-insensitive substring match,
// used by the user search endpoint.
type UsernameContains struct {
	Query string
}

func (s UsernameContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("username ILIKE ?", pattern)
}

type ActiveUsers struct{}

func (s ActiveUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type ExcludeUser struct {
	UserID uuid.UUID
}

func (s ExcludeUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.UserID)
}
