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
)

type NoteRepositoryImpl struct {
	db        *gorm.DB
	mapper    *mapper.NoteMapper
	tagMapper *mapper.TagMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:        db,
		mapper:    mapper.NewNoteMapper(),
		tagMapper: mapper.NewTagMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	// Tags are resolved beforehand; Omit stops GORM from re-inserting them.
	if err := r.db.WithContext(ctx).Omit("Tags.*").Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Omit("Tags").Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{}).Error
}

func (r *NoteRepositoryImpl) ReplaceTags(ctx context.Context, noteId uuid.UUID, tags []*entity.Tag) error {
	models := r.tagMapper.ToModels(tags)
	return r.db.WithContext(ctx).
		Model(&model.Note{Id: noteId}).
		Association("Tags").
		Replace(models)
}

func (r *NoteRepositoryImpl) ClearTags(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Note{Id: noteId}).
		Association("Tags").
		Clear()
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tags"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tags"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
