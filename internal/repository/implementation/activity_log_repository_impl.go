package implementation

import (
	"context"
	"time"

	"shared-notes-be/internal/model"
	"shared-notes-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityLogRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) contract.ActivityLogRepository {
	return &ActivityLogRepositoryImpl{db: db}
}

func (r *ActivityLogRepositoryImpl) Append(ctx context.Context, eventType string, payload []byte, occurredAt time.Time) error {
	m := &model.ActivityLog{
		Id:         uuid.New(),
		EventType:  eventType,
		Payload:    datatypes.JSON(payload),
		OccurredAt: occurredAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
