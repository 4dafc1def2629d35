package mapper

import (
	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/model"
)

type NoteShareMapper struct{}

func NewNoteShareMapper() *NoteShareMapper {
	return &NoteShareMapper{}
}

func (m *NoteShareMapper) ToEntity(s *model.NoteShare) *entity.NoteShare {
	if s == nil {
		return nil
	}

	// Stored levels are constrained to read/write/admin; an unparsable
	// value degrades to none rather than granting anything.
	perm, _ := entity.ParsePermission(s.Permission)

	return &entity.NoteShare{
		Id:         s.Id,
		NoteId:     s.NoteId,
		UserId:     s.UserId,
		Permission: perm,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *NoteShareMapper) ToModel(s *entity.NoteShare) *model.NoteShare {
	if s == nil {
		return nil
	}
	return &model.NoteShare{
		Id:         s.Id,
		NoteId:     s.NoteId,
		UserId:     s.UserId,
		Permission: s.Permission.String(),
		CreatedAt:  s.CreatedAt,
	}
}

func (m *NoteShareMapper) ToEntities(shares []*model.NoteShare) []*entity.NoteShare {
	entities := make([]*entity.NoteShare, len(shares))
	for i, s := range shares {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
