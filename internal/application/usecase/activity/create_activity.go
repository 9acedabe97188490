// Package activity contains physical-activity-related use cases.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateActivityInput represents the input for activity creation.
type CreateActivityInput struct {
	UserID           uuid.UUID
	Type             entity.ActivityType
	DurationMinutes  int
	EnergyKilojoules int
	Steps            int
	Date             time.Time
	Notes            string
}

// CreateActivityOutput represents the output of activity creation.
type CreateActivityOutput struct {
	Activity *entity.Activity
}

// CreateActivityUseCase handles activity creation logic.
type CreateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewCreateActivityUseCase creates a new CreateActivityUseCase instance.
func NewCreateActivityUseCase(activityRepo adapter.ActivityRepository) *CreateActivityUseCase {
	return &CreateActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the activity creation. Duration must be positive; energy
// and steps are gauges and may be zero but never negative.
func (uc *CreateActivityUseCase) Execute(ctx context.Context, input CreateActivityInput) (*CreateActivityOutput, error) {
	if !entity.ValidActivityType(input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidActivityType,
			"unknown activity type",
			domainerror.ErrInvalidEnum,
		)
	}

	if input.DurationMinutes <= 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidActivityDuration,
			"duration must be greater than zero",
			domainerror.ErrInvalidDuration,
		)
	}

	if input.EnergyKilojoules < 0 || input.Steps < 0 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNegativeActivityValue,
			"energy and steps must not be negative",
			domainerror.ErrNegativeValue,
		)
	}

	activity := entity.NewActivity(
		input.UserID,
		input.Type,
		input.DurationMinutes,
		input.EnergyKilojoules,
		input.Steps,
		input.Date,
		input.Notes,
	)

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return &CreateActivityOutput{Activity: activity}, nil
}
