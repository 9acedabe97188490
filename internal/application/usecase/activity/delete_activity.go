package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteActivityInput represents the input for activity deletion.
type DeleteActivityInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteActivityUseCase handles activity deletion logic.
type DeleteActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewDeleteActivityUseCase creates a new DeleteActivityUseCase instance.
func NewDeleteActivityUseCase(activityRepo adapter.ActivityRepository) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the activity deletion.
func (uc *DeleteActivityUseCase) Execute(ctx context.Context, input DeleteActivityInput) error {
	if _, err := uc.activityRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load activity: %w", err)
	}

	if err := uc.activityRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}
