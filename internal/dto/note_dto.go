package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content"`
	IsPublic bool     `json:"is_public"`
	Tags     []string `json:"tags" validate:"max=20,dive,max=50"`
}

type UpdateNoteRequest struct {
	Id       uuid.UUID `json:"-"`
	Title    string    `json:"title" validate:"required,max=200"`
	Content  string    `json:"content"`
	IsPublic *bool     `json:"is_public"`
	Tags     *[]string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	IsPublic  bool       `json:"is_public"`
	OwnerId   uuid.UUID  `json:"owner_id"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListNotesQuery struct {
	Query string
	Tag   string
	Skip  int
	Limit int
}

// SearchScope narrows advanced search to a slice of the accessible set.
const (
	SearchScopeAll    = "all"
	SearchScopeOwn    = "own"
	SearchScopeShared = "shared"
	SearchScopePublic = "public"
)

type SearchNotesQuery struct {
	Query string
	Tag   string
	Scope string
	Skip  int
	Limit int
}

type TagResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
