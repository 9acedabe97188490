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

// AddUtilityBillInput represents the input for recording a utility bill.
type AddUtilityBillInput struct {
	UserID  uuid.UUID
	HomeID  uuid.UUID
	Type    entity.UtilityBillType
	Amount  decimal.Decimal
	DueDate time.Time
	Paid    bool
}

// AddUtilityBillOutput represents the output of recording a utility bill.
type AddUtilityBillOutput struct {
	Bill *entity.UtilityBill
}

// AddUtilityBillUseCase handles utility bill creation logic.
type AddUtilityBillUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewAddUtilityBillUseCase creates a new AddUtilityBillUseCase instance.
func NewAddUtilityBillUseCase(homeRepo adapter.HomeRepository) *AddUtilityBillUseCase {
	return &AddUtilityBillUseCase{homeRepo: homeRepo}
}

// Execute records a utility bill against a home owned by the caller.
func (uc *AddUtilityBillUseCase) Execute(ctx context.Context, input AddUtilityBillInput) (*AddUtilityBillOutput, error) {
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

	if !entity.ValidUtilityBillType(input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidBillType,
			fmt.Sprintf("invalid utility bill type: %s", input.Type),
			domainerror.ErrInvalidEnum,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidHomeChildValue,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	bill := entity.NewUtilityBill(
		input.UserID,
		input.HomeID,
		input.Type,
		input.Amount,
		input.DueDate,
		input.Paid,
	)

	if err := uc.homeRepo.CreateUtilityBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create utility bill: %w", err)
	}

	return &AddUtilityBillOutput{Bill: bill}, nil
}

// ListUtilityBillsInput represents the input for listing a home's utility bills.
type ListUtilityBillsInput struct {
	UserID uuid.UUID
	HomeID uuid.UUID
}

// ListUtilityBillsOutput represents the output of listing a home's utility bills.
type ListUtilityBillsOutput struct {
	Bills []*entity.UtilityBill
}

// ListUtilityBillsUseCase handles utility bill listing logic.
type ListUtilityBillsUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewListUtilityBillsUseCase creates a new ListUtilityBillsUseCase instance.
func NewListUtilityBillsUseCase(homeRepo adapter.HomeRepository) *ListUtilityBillsUseCase {
	return &ListUtilityBillsUseCase{homeRepo: homeRepo}
}

// Execute lists the utility bills attached to a home.
func (uc *ListUtilityBillsUseCase) Execute(ctx context.Context, input ListUtilityBillsInput) (*ListUtilityBillsOutput, error) {
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

	bills, err := uc.homeRepo.FindUtilityBillsByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list utility bills: %w", err)
	}
	return &ListUtilityBillsOutput{Bills: bills}, nil
}

// UpdateUtilityBillInput represents the input for updating a utility bill.
// Nil fields are left unchanged.
type UpdateUtilityBillInput struct {
	ID      uuid.UUID
	HomeID  uuid.UUID
	UserID  uuid.UUID
	Type    *entity.UtilityBillType
	Amount  *decimal.Decimal
	DueDate *time.Time
	Paid    *bool
}

// UpdateUtilityBillOutput represents the output of updating a utility bill.
type UpdateUtilityBillOutput struct {
	Bill *entity.UtilityBill
}

// UpdateUtilityBillUseCase handles utility bill update logic.
type UpdateUtilityBillUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewUpdateUtilityBillUseCase creates a new UpdateUtilityBillUseCase instance.
func NewUpdateUtilityBillUseCase(homeRepo adapter.HomeRepository) *UpdateUtilityBillUseCase {
	return &UpdateUtilityBillUseCase{homeRepo: homeRepo}
}

// Execute merges the provided fields into the stored bill and persists it.
// Toggling Paid is the most common path from the bill list screen.
func (uc *UpdateUtilityBillUseCase) Execute(ctx context.Context, input UpdateUtilityBillInput) (*UpdateUtilityBillOutput, error) {
	bills, err := uc.homeRepo.FindUtilityBillsByHome(ctx, input.HomeID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load utility bills: %w", err)
	}

	var bill *entity.UtilityBill
	for _, candidate := range bills {
		if candidate.ID == input.ID {
			bill = candidate
			break
		}
	}
	if bill == nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"utility bill not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if input.Type != nil {
		if !entity.ValidUtilityBillType(*input.Type) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidBillType,
				fmt.Sprintf("invalid utility bill type: %s", *input.Type),
				domainerror.ErrInvalidEnum,
			)
		}
		bill.Type = *input.Type
	}
	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHomeChildValue,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		bill.Amount = *input.Amount
	}
	if input.DueDate != nil {
		bill.DueDate = *input.DueDate
	}
	if input.Paid != nil {
		bill.Paid = *input.Paid
	}
	bill.UpdatedAt = time.Now().UTC()

	if err := uc.homeRepo.UpdateUtilityBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update utility bill: %w", err)
	}

	return &UpdateUtilityBillOutput{Bill: bill}, nil
}

// DeleteUtilityBillInput represents the input for deleting a utility bill.
type DeleteUtilityBillInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteUtilityBillUseCase handles utility bill deletion logic.
type DeleteUtilityBillUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewDeleteUtilityBillUseCase creates a new DeleteUtilityBillUseCase instance.
func NewDeleteUtilityBillUseCase(homeRepo adapter.HomeRepository) *DeleteUtilityBillUseCase {
	return &DeleteUtilityBillUseCase{homeRepo: homeRepo}
}

// Execute performs the utility bill deletion.
func (uc *DeleteUtilityBillUseCase) Execute(ctx context.Context, input DeleteUtilityBillInput) error {
	if err := uc.homeRepo.DeleteUtilityBill(ctx, input.ID, input.UserID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeHomeChildNotFound,
			"utility bill not found",
			err,
		)
	}
	return nil
}
