package implementation

import (
	"context"
	"errors"
	"time"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/mapper"
	"shared-notes-be/internal/model"
	"shared-notes-be/internal/repository/contract"
	"shared-notes-be/internal/repository/scope"
	"shared-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *TagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TagRepositoryImpl) FindOrCreateByName(ctx context.Context, name string) (*entity.Tag, error) {
	// ON CONFLICT DO NOTHING + re-read keeps concurrent first uses from
	// erroring on the unique name index.
	m := &model.Tag{
		Id:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil {
		return nil, err
	}

	var stored model.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&stored).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&stored), nil
}

func (r *TagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var models []*model.Tag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TagRepositoryImpl) FindAllForOwner(ctx context.Context, ownerId uuid.UUID) ([]*entity.Tag, error) {
	var models []*model.Tag
	err := r.db.WithContext(ctx).
		Model(&model.Tag{}).
		Distinct("tags.*").
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Joins("JOIN notes ON notes.id = note_tags.note_id").
		Where("notes.owner_id = ?", ownerId).
		Scopes(scope.OrderByNameAsc).
		Find(&models).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*entity.Tag{}, nil
		}
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
