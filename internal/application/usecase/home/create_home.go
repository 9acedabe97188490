// Package home contains home-related use cases, including the four child
// collections (insurances, smoke alarms, repairs, utility bills).
package home

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateHomeInput represents the input for home creation.
type CreateHomeInput struct {
	UserID         uuid.UUID
	Name           string
	Type           entity.HomeType
	Ownership      entity.OwnershipType
	MonthlyPayment *decimal.Decimal
	Address        string
}

// CreateHomeOutput represents the output of home creation.
type CreateHomeOutput struct {
	Home *entity.Home
}

// CreateHomeUseCase handles home creation logic.
type CreateHomeUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewCreateHomeUseCase creates a new CreateHomeUseCase instance.
func NewCreateHomeUseCase(homeRepo adapter.HomeRepository) *CreateHomeUseCase {
	return &CreateHomeUseCase{
		homeRepo: homeRepo,
	}
}

// Execute performs the home creation.
func (uc *CreateHomeUseCase) Execute(ctx context.Context, input CreateHomeInput) (*CreateHomeOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingHomeFields,
			"name is required",
			domainerror.ErrMissingFields,
		)
	}

	if !entity.ValidHomeType(input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidHomeType,
			"unknown home type",
			domainerror.ErrInvalidEnum,
		)
	}

	if !entity.ValidOwnershipType(input.Ownership) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidOwnershipType,
			"unknown ownership type",
			domainerror.ErrInvalidEnum,
		)
	}

	if input.MonthlyPayment != nil && input.MonthlyPayment.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidHomeChildValue,
			"monthly payment must not be negative",
			domainerror.ErrNegativeValue,
		)
	}

	home := entity.NewHome(
		input.UserID,
		input.Name,
		input.Type,
		input.Ownership,
		input.MonthlyPayment,
		input.Address,
	)

	if err := uc.homeRepo.Create(ctx, home); err != nil {
		return nil, fmt.Errorf("failed to create home: %w", err)
	}

	return &CreateHomeOutput{Home: home}, nil
}
