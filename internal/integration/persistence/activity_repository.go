package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create creates a new activity in the database.
func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	result := r.db.WithContext(ctx).Create(activityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an activity by id, scoped to the owning user.
func (r *activityRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error) {
	var activityModel model.ActivityModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity(), nil
}

// FindByUser retrieves all activities for a user, newest first.
func (r *activityRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.Activity, len(activityModels))
	for i := range activityModels {
		activities[i] = activityModels[i].ToEntity()
	}
	return activities, nil
}

// Update updates an existing activity, scoped to the owning user.
func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityModel := model.ActivityFromEntity(activity)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", activity.ID, activity.UserID).
		Save(activityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an activity, scoped to the owning user.
func (r *activityRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ActivityModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
