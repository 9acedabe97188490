package home

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

// AddSmokeAlarmInput represents the input for registering a smoke alarm.
type AddSmokeAlarmInput struct {
	UserID          uuid.UUID
	HomeID          uuid.UUID
	Location        string
	Status          entity.SmokeAlarmStatus
	LastTested      *time.Time
	BatteryReplaced *time.Time
}

// AddSmokeAlarmOutput represents the output of registering a smoke alarm.
type AddSmokeAlarmOutput struct {
	Alarm *entity.SmokeAlarm
}

// AddSmokeAlarmUseCase handles smoke alarm creation logic.
type AddSmokeAlarmUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewAddSmokeAlarmUseCase creates a new AddSmokeAlarmUseCase instance.
func NewAddSmokeAlarmUseCase(homeRepo adapter.HomeRepository) *AddSmokeAlarmUseCase {
	return &AddSmokeAlarmUseCase{homeRepo: homeRepo}
}

// Execute registers a smoke alarm against a home owned by the caller.
func (uc *AddSmokeAlarmUseCase) Execute(ctx context.Context, input AddSmokeAlarmInput) (*AddSmokeAlarmOutput, error) {
	if _, err := uc.homeRepo.FindByID(ctx, input.HomeID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeHomeNotFound,
				"home not found",
				domainerror.ErrParentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load home: %w", err)
	}

	if input.Location == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingHomeFields,
			"location is required",
			domainerror.ErrMissingFields,
		)
	}

	if !entity.ValidSmokeAlarmStatus(input.Status) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAlarmStatus,
			fmt.Sprintf("invalid smoke alarm status: %s", input.Status),
			domainerror.ErrInvalidEnum,
		)
	}

	alarm := entity.NewSmokeAlarm(
		input.UserID,
		input.HomeID,
		input.Location,
		input.Status,
		input.LastTested,
		input.BatteryReplaced,
	)

	if err := uc.homeRepo.CreateSmokeAlarm(ctx, alarm); err != nil {
		return nil, fmt.Errorf("failed to create smoke alarm: %w", err)
	}

	return &AddSmokeAlarmOutput{Alarm: alarm}, nil
}

// ListSmokeAlarmsInput represents the input for listing a home's smoke alarms.
type ListSmokeAlarmsInput struct {
	UserID uuid.UUID
	HomeID uuid.UUID
}

// ListSmokeAlarmsOutput represents the output of listing a home's smoke alarms.
type ListSmokeAlarmsOutput struct {
	Alarms []*entity.SmokeAlarm
}

// ListSmokeAlarmsUseCase handles smoke alarm listing logic.
type ListSmokeAlarmsUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewListSmokeAlarmsUseCase creates a new ListSmokeAlarmsUseCase instance.
func NewListSmokeAlarmsUseCase(homeRepo adapter.HomeRepository) *ListSmokeAlarmsUseCase {
	return &ListSmokeAlarmsUseCase{homeRepo: homeRepo}
}

// Execute lists the smoke alarms registered against a home.
func (uc *ListSmokeAlarmsUseCase) Execute(ctx context.Context, input ListSmokeAlarmsInput) (*ListSmokeAlarmsOutput, error) {
	if _, err := uc.homeRepo.FindByID(ctx, input.HomeID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeHomeNotFound,
				"home not found",
				domainerror.ErrParentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load home: %w", err)
	}

	alarms, err := uc.homeRepo.FindSmokeAlarmsByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list smoke alarms: %w", err)
	}
	return &ListSmokeAlarmsOutput{Alarms: alarms}, nil
}

// UpdateSmokeAlarmInput represents the input for updating a smoke alarm.
// Nil fields are left unchanged.
type UpdateSmokeAlarmInput struct {
	ID              uuid.UUID
	HomeID          uuid.UUID
	UserID          uuid.UUID
	Location        *string
	Status          *entity.SmokeAlarmStatus
	LastTested      *time.Time
	BatteryReplaced *time.Time
}

// UpdateSmokeAlarmOutput represents the output of updating a smoke alarm.
type UpdateSmokeAlarmOutput struct {
	Alarm *entity.SmokeAlarm
}

// UpdateSmokeAlarmUseCase handles smoke alarm update logic.
type UpdateSmokeAlarmUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewUpdateSmokeAlarmUseCase creates a new UpdateSmokeAlarmUseCase instance.
func NewUpdateSmokeAlarmUseCase(homeRepo adapter.HomeRepository) *UpdateSmokeAlarmUseCase {
	return &UpdateSmokeAlarmUseCase{homeRepo: homeRepo}
}

// Execute merges the provided fields into the stored alarm and persists it.
func (uc *UpdateSmokeAlarmUseCase) Execute(ctx context.Context, input UpdateSmokeAlarmInput) (*UpdateSmokeAlarmOutput, error) {
	alarms, err := uc.homeRepo.FindSmokeAlarmsByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load smoke alarms: %w", err)
	}

	var alarm *entity.SmokeAlarm
	for _, candidate := range alarms {
		if candidate.ID == input.ID {
			alarm = candidate
			break
		}
	}
	if alarm == nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"smoke alarm not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if input.Location != nil {
		alarm.Location = *input.Location
	}
	if input.Status != nil {
		if !entity.ValidSmokeAlarmStatus(*input.Status) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidAlarmStatus,
				fmt.Sprintf("invalid smoke alarm status: %s", *input.Status),
				domainerror.ErrInvalidEnum,
			)
		}
		alarm.Status = *input.Status
	}
	if input.LastTested != nil {
		alarm.LastTested = input.LastTested
	}
	if input.BatteryReplaced != nil {
		alarm.BatteryReplaced = input.BatteryReplaced
	}
	alarm.UpdatedAt = time.Now().UTC()

	if err := uc.homeRepo.UpdateSmokeAlarm(ctx, alarm); err != nil {
		return nil, fmt.Errorf("failed to update smoke alarm: %w", err)
	}

	return &UpdateSmokeAlarmOutput{Alarm: alarm}, nil
}

// DeleteSmokeAlarmInput represents the input for deleting a smoke alarm.
type DeleteSmokeAlarmInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteSmokeAlarmUseCase handles smoke alarm deletion logic.
type DeleteSmokeAlarmUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewDeleteSmokeAlarmUseCase creates a new DeleteSmokeAlarmUseCase instance.
func NewDeleteSmokeAlarmUseCase(homeRepo adapter.HomeRepository) *DeleteSmokeAlarmUseCase {
	return &DeleteSmokeAlarmUseCase{homeRepo: homeRepo}
}

// Execute performs the smoke alarm deletion.
func (uc *DeleteSmokeAlarmUseCase) Execute(ctx context.Context, input DeleteSmokeAlarmInput) error {
	if err := uc.homeRepo.DeleteSmokeAlarm(ctx, input.ID, input.UserID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"smoke alarm not found",
			err,
		)
	}
	return nil
}
