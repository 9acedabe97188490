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

// AddInsuranceInput represents the input for adding a home insurance policy.
type AddInsuranceInput struct {
	UserID       uuid.UUID
	HomeID       uuid.UUID
	Provider     string
	PolicyNumber string
	Premium      decimal.Decimal
	RenewalDate  time.Time
}

// AddInsuranceOutput represents the output of adding a home insurance policy.
type AddInsuranceOutput struct {
	Insurance *entity.HomeInsurance
}

// AddInsuranceUseCase handles home insurance creation logic.
type AddInsuranceUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewAddInsuranceUseCase creates a new AddInsuranceUseCase instance.
func NewAddInsuranceUseCase(homeRepo adapter.HomeRepository) *AddInsuranceUseCase {
	return &AddInsuranceUseCase{homeRepo: homeRepo}
}

// Execute adds an insurance policy to a home owned by the caller.
func (uc *AddInsuranceUseCase) Execute(ctx context.Context, input AddInsuranceInput) (*AddInsuranceOutput, error) {
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

	if input.Provider == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingHomeFields,
			"provider is required",
			domainerror.ErrMissingFields,
		)
	}

	if input.Premium.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidHomeChildValue,
			"premium must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	ins := entity.NewHomeInsurance(
		input.UserID,
		input.HomeID,
		input.Provider,
		input.PolicyNumber,
		input.Premium,
		input.RenewalDate,
	)

	if err := uc.homeRepo.CreateInsurance(ctx, ins); err != nil {
		return nil, fmt.Errorf("failed to create home insurance: %w", err)
	}

	return &AddInsuranceOutput{Insurance: ins}, nil
}

// ListInsurancesInput represents the input for listing a home's insurances.
type ListInsurancesInput struct {
	UserID uuid.UUID
	HomeID uuid.UUID
}

// ListInsurancesOutput represents the output of listing a home's insurances.
type ListInsurancesOutput struct {
	Insurances []*entity.HomeInsurance
}

// ListInsurancesUseCase handles home insurance listing logic.
type ListInsurancesUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewListInsurancesUseCase creates a new ListInsurancesUseCase instance.
func NewListInsurancesUseCase(homeRepo adapter.HomeRepository) *ListInsurancesUseCase {
	return &ListInsurancesUseCase{homeRepo: homeRepo}
}

// Execute lists the insurance policies attached to a home.
func (uc *ListInsurancesUseCase) Execute(ctx context.Context, input ListInsurancesInput) (*ListInsurancesOutput, error) {
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

	insurances, err := uc.homeRepo.FindInsurancesByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list home insurances: %w", err)
	}
	return &ListInsurancesOutput{Insurances: insurances}, nil
}

// UpdateInsuranceInput represents the input for updating a home insurance
// policy. Nil fields are left unchanged.
type UpdateInsuranceInput struct {
	ID           uuid.UUID
	HomeID       uuid.UUID
	UserID       uuid.UUID
	Provider     *string
	PolicyNumber *string
	Premium      *decimal.Decimal
	RenewalDate  *time.Time
}

// UpdateInsuranceOutput represents the output of updating a home insurance policy.
type UpdateInsuranceOutput struct {
	Insurance *entity.HomeInsurance
}

// UpdateInsuranceUseCase handles home insurance update logic.
type UpdateInsuranceUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewUpdateInsuranceUseCase creates a new UpdateInsuranceUseCase instance.
func NewUpdateInsuranceUseCase(homeRepo adapter.HomeRepository) *UpdateInsuranceUseCase {
	return &UpdateInsuranceUseCase{homeRepo: homeRepo}
}

// Execute merges the provided fields into the stored policy and persists it.
func (uc *UpdateInsuranceUseCase) Execute(ctx context.Context, input UpdateInsuranceInput) (*UpdateInsuranceOutput, error) {
	insurances, err := uc.homeRepo.FindInsurancesByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load home insurances: %w", err)
	}

	var ins *entity.HomeInsurance
	for _, candidate := range insurances {
		if candidate.ID == input.ID {
			ins = candidate
			break
		}
	}
	if ins == nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"home insurance not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if input.Provider != nil {
		ins.Provider = *input.Provider
	}
	if input.PolicyNumber != nil {
		ins.PolicyNumber = *input.PolicyNumber
	}
	if input.Premium != nil {
		if input.Premium.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHomeChildValue,
				"premium must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		ins.Premium = *input.Premium
	}
	if input.RenewalDate != nil {
		ins.RenewalDate = *input.RenewalDate
	}
	ins.UpdatedAt = time.Now().UTC()

	if err := uc.homeRepo.UpdateInsurance(ctx, ins); err != nil {
		return nil, fmt.Errorf("failed to update home insurance: %w", err)
	}

	return &UpdateInsuranceOutput{Insurance: ins}, nil
}

// DeleteInsuranceInput represents the input for deleting a home insurance policy.
type DeleteInsuranceInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteInsuranceUseCase handles home insurance deletion logic.
type DeleteInsuranceUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewDeleteInsuranceUseCase creates a new DeleteInsuranceUseCase instance.
func NewDeleteInsuranceUseCase(homeRepo adapter.HomeRepository) *DeleteInsuranceUseCase {
	return &DeleteInsuranceUseCase{homeRepo: homeRepo}
}

// Execute performs the home insurance deletion.
func (uc *DeleteInsuranceUseCase) Execute(ctx context.Context, input DeleteInsuranceInput) error {
	if err := uc.homeRepo.DeleteInsurance(ctx, input.ID, input.UserID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"home insurance not found",
			err,
		)
	}
	return nil
}
