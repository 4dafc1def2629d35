package implementation

import (
	"context"
	"errors"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/mapper"
	"shared-notes-be/internal/model"
	"shared-notes-be/internal/repository/contract"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteShareRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteShareMapper
}

func NewNoteShareRepository(db *gorm.DB) contract.NoteShareRepository {
	return &NoteShareRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteShareMapper(),
	}
}

func (r *NoteShareRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert relies on the (note_id, user_id) unique index: a concurrent
// re-share of the same pair merges into one row instead of racing a
// read-then-write in the service layer.
func (r *NoteShareRepositoryImpl) Upsert(ctx context.Context, share *entity.NoteShare) error {
	m := r.mapper.ToModel(share)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "note_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"permission"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}

	// Re-read so the caller observes the surviving row's identity.
	var stored model.NoteShare
	if err := r.db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", m.NoteId, m.UserId).
		First(&stored).Error; err != nil {
		return err
	}
	*share = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *NoteShareRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NoteShare{}).Error
}

func (r *NoteShareRepositoryImpl) DeleteAllByNote(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteShare{}).Error
}

func (r *NoteShareRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteShare, error) {
	var m model.NoteShare
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteShareRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteShare, error) {
	var models []*model.NoteShare
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteShareRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteShare{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
