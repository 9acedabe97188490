package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ListActivitiesInput represents the input for listing activities.
type ListActivitiesInput struct {
	UserID uuid.UUID
}

// ListActivitiesOutput represents the output of listing activities.
type ListActivitiesOutput struct {
	Activities []*entity.Activity
}

// ListActivitiesUseCase handles activity listing logic.
type ListActivitiesUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(activityRepo adapter.ActivityRepository) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
	}
}

// Execute retrieves all activities for the user, newest first.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	activities, err := uc.activityRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return &ListActivitiesOutput{Activities: activities}, nil
}
