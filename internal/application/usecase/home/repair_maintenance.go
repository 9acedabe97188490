package home

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// AddRepairInput represents the input for recording a repair or maintenance job.
type AddRepairInput struct {
	UserID      uuid.UUID
	HomeID      uuid.UUID
	Description string
	Cost        decimal.Decimal
	Date        time.Time
	Contractor  string
}

// AddRepairOutput represents the output of recording a repair or maintenance job.
type AddRepairOutput struct {
	Repair *entity.RepairMaintenance
}

// AddRepairUseCase handles repair record creation logic.
type AddRepairUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewAddRepairUseCase creates a new AddRepairUseCase instance.
func NewAddRepairUseCase(homeRepo adapter.HomeRepository) *AddRepairUseCase {
	return &AddRepairUseCase{homeRepo: homeRepo}
}

// Execute records a repair against a home owned by the caller.
func (uc *AddRepairUseCase) Execute(ctx context.Context, input AddRepairInput) (*AddRepairOutput, error) {
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

	if input.Description == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingHomeFields,
			"description is required",
			domainerror.ErrMissingFields,
		)
	}

	if input.Cost.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidHomeChildValue,
			"cost must not be negative",
			domainerror.ErrNegativeValue,
		)
	}

	repair := entity.NewRepairMaintenance(
		input.UserID,
		input.HomeID,
		input.Description,
		input.Cost,
		input.Date,
		input.Contractor,
	)

	if err := uc.homeRepo.CreateRepair(ctx, repair); err != nil {
		return nil, fmt.Errorf("failed to create repair record: %w", err)
	}

	return &AddRepairOutput{Repair: repair}, nil
}

// ListRepairsInput represents the input for listing a home's repair records.
type ListRepairsInput struct {
	UserID uuid.UUID
	HomeID uuid.UUID
}

// ListRepairsOutput represents the output of listing a home's repair records.
type ListRepairsOutput struct {
	Repairs []*entity.RepairMaintenance
}

// ListRepairsUseCase handles repair record listing logic.
type ListRepairsUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewListRepairsUseCase creates a new ListRepairsUseCase instance.
func NewListRepairsUseCase(homeRepo adapter.HomeRepository) *ListRepairsUseCase {
	return &ListRepairsUseCase{homeRepo: homeRepo}
}

// Execute lists the repair records attached to a home.
func (uc *ListRepairsUseCase) Execute(ctx context.Context, input ListRepairsInput) (*ListRepairsOutput, error) {
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

	repairs, err := uc.homeRepo.FindRepairsByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list repair records: %w", err)
	}
	return &ListRepairsOutput{Repairs: repairs}, nil
}

// UpdateRepairInput represents the input for updating a repair record.
// Nil fields are left unchanged.
type UpdateRepairInput struct {
	ID          uuid.UUID
	HomeID      uuid.UUID
	UserID      uuid.UUID
	Description *string
	Cost        *decimal.Decimal
	Date        *time.Time
	Contractor  *string
}

// UpdateRepairOutput represents the output of updating a repair record.
type UpdateRepairOutput struct {
	Repair *entity.RepairMaintenance
}

// UpdateRepairUseCase handles repair record update logic.
type UpdateRepairUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewUpdateRepairUseCase creates a new UpdateRepairUseCase instance.
func NewUpdateRepairUseCase(homeRepo adapter.HomeRepository) *UpdateRepairUseCase {
	return &UpdateRepairUseCase{homeRepo: homeRepo}
}

// Execute merges the provided fields into the stored record and persists it.
func (uc *UpdateRepairUseCase) Execute(ctx context.Context, input UpdateRepairInput) (*UpdateRepairOutput, error) {
	repairs, err := uc.homeRepo.FindRepairsByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load repair records: %w", err)
	}

	var repair *entity.RepairMaintenance
	for _, candidate := range repairs {
		if candidate.ID == input.ID {
			repair = candidate
			break
		}
	}
	if repair == nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"repair record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if input.Description != nil {
		repair.Description = *input.Description
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHomeChildValue,
				"cost must not be negative",
				domainerror.ErrNegativeValue,
			)
		}
		repair.Cost = *input.Cost
	}
	if input.Date != nil {
		repair.Date = *input.Date
	}
	if input.Contractor != nil {
		repair.Contractor = *input.Contractor
	}
	repair.UpdatedAt = time.Now().UTC()

	if err := uc.homeRepo.UpdateRepair(ctx, repair); err != nil {
		return nil, fmt.Errorf("failed to update repair record: %w", err)
	}

	return &UpdateRepairOutput{Repair: repair}, nil
}

// DeleteRepairInput represents the input for deleting a repair record.
type DeleteRepairInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteRepairUseCase handles repair record deletion logic.
type DeleteRepairUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewDeleteRepairUseCase creates a new DeleteRepairUseCase instance.
func NewDeleteRepairUseCase(homeRepo adapter.HomeRepository) *DeleteRepairUseCase {
	return &DeleteRepairUseCase{homeRepo: homeRepo}
}

// Execute performs the repair record deletion.
func (uc *DeleteRepairUseCase) Execute(ctx context.Context, input DeleteRepairInput) error {
	if err := uc.homeRepo.DeleteRepair(ctx, input.ID, input.UserID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"repair record not found",
			err,
		)
	}
	return nil
}
