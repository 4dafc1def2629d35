package access

import (
	"testing"

	"shared-notes-be/internal/entity"

	"github.com/google/uuid"
)

func TestResolve(t *testing.T) {
	owner := uuid.New()
	sharee := uuid.New()
	stranger := uuid.New()
	noteId := uuid.New()

	privateNote := &entity.Note{Id: noteId, OwnerId: owner, IsPublic: false}
	publicNote := &entity.Note{Id: noteId, OwnerId: owner, IsPublic: true}

	shareFor := func(userId uuid.UUID, p entity.Permission) *entity.NoteShare {
		return &entity.NoteShare{Id: uuid.New(), NoteId: noteId, UserId: userId, Permission: p}
	}

	tests := []struct {
		name   string
		userId uuid.UUID
		note   *entity.Note
		share  *entity.NoteShare
		want   entity.Permission
	}{
		{
			name:   "owner on private note",
			userId: owner,
			note:   privateNote,
			want:   entity.PermissionOwner,
		},
		{
			name:   "owner wins over own share row",
			userId: owner,
			note:   privateNote,
			share:  shareFor(owner, entity.PermissionRead),
			want:   entity.PermissionOwner,
		},
		{
			name:   "share grant read",
			userId: sharee,
			note:   privateNote,
			share:  shareFor(sharee, entity.PermissionRead),
			want:   entity.PermissionRead,
		},
		{
			name:   "share grant write",
			userId: sharee,
			note:   privateNote,
			share:  shareFor(sharee, entity.PermissionWrite),
			want:   entity.PermissionWrite,
		},
		{
			name:   "share grant admin",
			userId: sharee,
			note:   privateNote,
			share:  shareFor(sharee, entity.PermissionAdmin),
			want:   entity.PermissionAdmin,
		},
		{
			name:   "share wins over public flag",
			userId: sharee,
			note:   publicNote,
			share:  shareFor(sharee, entity.PermissionWrite),
			want:   entity.PermissionWrite,
		},
		{
			name:   "public note readable by stranger",
			userId: stranger,
			note:   publicNote,
			want:   entity.PermissionRead,
		},
		{
			name:   "private note invisible to stranger",
			userId: stranger,
			note:   privateNote,
			want:   entity.PermissionNone,
		},
		{
			name:   "share for another user is ignored",
			userId: stranger,
			note:   privateNote,
			share:  shareFor(sharee, entity.PermissionAdmin),
			want:   entity.PermissionNone,
		},
		{
			name:   "nil note",
			userId: owner,
			note:   nil,
			want:   entity.PermissionNone,
		},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.userId, tt.note, tt.share)
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanReadCanWrite(t *testing.T) {
	owner := uuid.New()
	sharee := uuid.New()
	noteId := uuid.New()
	note := &entity.Note{Id: noteId, OwnerId: owner}
	readShare := &entity.NoteShare{Id: uuid.New(), NoteId: noteId, UserId: sharee, Permission: entity.PermissionRead}

	r := NewResolver()

	if !r.CanRead(sharee, note, readShare) {
		t.Error("read share should allow reading")
	}
	if r.CanWrite(sharee, note, readShare) {
		t.Error("read share must not allow writing")
	}
	if !r.CanWrite(owner, note, nil) {
		t.Error("owner should always be able to write")
	}
}

func TestIsOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	note := &entity.Note{Id: uuid.New(), OwnerId: owner}

	r := NewResolver()

	if !r.IsOwner(owner, note) {
		t.Error("IsOwner should be true for the owner")
	}
	if r.IsOwner(other, note) {
		t.Error("IsOwner should be false for non-owners")
	}
	if r.IsOwner(owner, nil) {
		t.Error("IsOwner should be false for a nil note")
	}
}
