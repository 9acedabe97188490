package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// UpdateActivityInput represents the input for activity update. Nil fields
// are left unchanged.
type UpdateActivityInput struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Type             *entity.ActivityType
	DurationMinutes  *int
	EnergyKilojoules *int
	Steps            *int
	Date             *time.Time
	Notes            *string
}

// UpdateActivityOutput represents the output of activity update.
type UpdateActivityOutput struct {
	Activity *entity.Activity
}

// UpdateActivityUseCase handles activity update logic.
type UpdateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewUpdateActivityUseCase creates a new UpdateActivityUseCase instance.
func NewUpdateActivityUseCase(activityRepo adapter.ActivityRepository) *UpdateActivityUseCase {
	return &UpdateActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute merges the provided fields into the stored activity and persists it.
func (uc *UpdateActivityUseCase) Execute(ctx context.Context, input UpdateActivityInput) (*UpdateActivityOutput, error) {
	activity, err := uc.activityRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	if input.Type != nil {
		if !entity.ValidActivityType(*input.Type) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidActivityType,
				"unknown activity type",
				domainerror.ErrInvalidEnum,
			)
		}
		activity.Type = *input.Type
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidActivityDuration,
				"duration must be greater than zero",
				domainerror.ErrInvalidDuration,
			)
		}
		activity.DurationMinutes = *input.DurationMinutes
	}
	if input.EnergyKilojoules != nil {
		if *input.EnergyKilojoules < 0 {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeNegativeActivityValue,
				"energy must not be negative",
				domainerror.ErrNegativeValue,
			)
		}
		activity.EnergyKilojoules = *input.EnergyKilojoules
	}
	if input.Steps != nil {
		if *input.Steps < 0 {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeNegativeActivityValue,
				"steps must not be negative",
				domainerror.ErrNegativeValue,
			)
		}
		activity.Steps = *input.Steps
	}
	if input.Date != nil {
		activity.Date = *input.Date
	}
	if input.Notes != nil {
		activity.Notes = *input.Notes
	}
	activity.UpdatedAt = time.Now().UTC()

	if err := uc.activityRepo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return &UpdateActivityOutput{Activity: activity}, nil
}
