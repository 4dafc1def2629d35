package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text"`
	IsPublic  bool      `gorm:"not null;default:false;index"`
	OwnerId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Tags      []*Tag    `gorm:"many2many:note_tags;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
