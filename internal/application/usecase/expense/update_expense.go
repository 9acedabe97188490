package expense

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

// UpdateExpenseInput represents the input for expense update. Nil fields are
// left unchanged.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    *entity.ExpenseCategory
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	HasReceipt  *bool
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute merges the provided fields into the stored expense and persists it.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}

	if input.Category != nil {
		if !entity.ValidExpenseCategory(*input.Category) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidExpenseCategory,
				"unknown expense category",
				domainerror.ErrInvalidEnum,
			)
		}
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.HasReceipt != nil {
		expense.HasReceipt = *input.HasReceipt
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
