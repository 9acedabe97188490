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

// UpdateHomeInput represents the input for home update. Nil fields are left
// unchanged.
type UpdateHomeInput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Type           *entity.HomeType
	Ownership      *entity.OwnershipType
	MonthlyPayment *decimal.Decimal
	Address        *string
}

// UpdateHomeOutput represents the output of home update.
type UpdateHomeOutput struct {
	Home *entity.Home
}

// UpdateHomeUseCase handles home update logic.
type UpdateHomeUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewUpdateHomeUseCase creates a new UpdateHomeUseCase instance.
func NewUpdateHomeUseCase(homeRepo adapter.HomeRepository) *UpdateHomeUseCase {
	return &UpdateHomeUseCase{
		homeRepo: homeRepo,
	}
}

// Execute merges the provided fields into the stored home and persists it.
func (uc *UpdateHomeUseCase) Execute(ctx context.Context, input UpdateHomeInput) (*UpdateHomeOutput, error) {
	home, err := uc.homeRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeHomeNotFound,
				"home not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load home: %w", err)
	}

	if input.Name != nil {
		home.Name = *input.Name
	}
	if input.Type != nil {
		if !entity.ValidHomeType(*input.Type) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHomeType,
				"unknown home type",
				domainerror.ErrInvalidEnum,
			)
		}
		home.Type = *input.Type
	}
	if input.Ownership != nil {
		if !entity.ValidOwnershipType(*input.Ownership) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidOwnershipType,
				"unknown ownership type",
				domainerror.ErrInvalidEnum,
			)
		}
		home.Ownership = *input.Ownership
	}
	if input.MonthlyPayment != nil {
		if input.MonthlyPayment.IsNegative() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHomeChildValue,
				"monthly payment must not be negative",
				domainerror.ErrNegativeValue,
			)
		}
		home.MonthlyPayment = input.MonthlyPayment
	}
	if input.Address != nil {
		home.Address = *input.Address
	}
	home.UpdatedAt = time.Now().UTC()

	if err := uc.homeRepo.Update(ctx, home); err != nil {
		return nil, fmt.Errorf("failed to update home: %w", err)
	}

	return &UpdateHomeOutput{Home: home}, nil
}
