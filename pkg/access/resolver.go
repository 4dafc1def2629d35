// Package access decides what a user may do with a note. Resolution is
// pure: callers fetch the note and the user's share row (if any) and the
// resolver derives the effective permission tier.
package access

import (
	"shared-notes-be/internal/entity"

	"github.com/google/uuid"
)

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the effective permission of userId on note, evaluated
// in strict order with the first match winning:
//
//  1. ownership    -> owner
//  2. share grant  -> the stored level
//  3. public flag  -> read
//  4. otherwise    -> none
//
// share must be the row for (note, userId) or nil; a share for a
// different pair is a programming error and is ignored.
func (r *Resolver) Resolve(userId uuid.UUID, note *entity.Note, share *entity.NoteShare) entity.Permission {
	if note == nil {
		return entity.PermissionNone
	}

	if note.OwnerId == userId {
		return entity.PermissionOwner
	}

	if share != nil && share.NoteId == note.Id && share.UserId == userId {
		return share.Permission
	}

	if note.IsPublic {
		return entity.PermissionRead
	}

	return entity.PermissionNone
}

// CanRead reports whether the resolved level allows reading the note.
func (r *Resolver) CanRead(userId uuid.UUID, note *entity.Note, share *entity.NoteShare) bool {
	return r.Resolve(userId, note, share).AtLeast(entity.PermissionRead)
}

// CanWrite reports whether the resolved level allows modifying the note.
func (r *Resolver) CanWrite(userId uuid.UUID, note *entity.Note, share *entity.NoteShare) bool {
	return r.Resolve(userId, note, share).AtLeast(entity.PermissionWrite)
}

// IsOwner reports whether userId owns the note. Delete and share
// management require ownership.
func (r *Resolver) IsOwner(userId uuid.UUID, note *entity.Note) bool {
	return note != nil && note.OwnerId == userId
}
