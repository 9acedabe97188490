// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Category    entity.ExpenseCategory
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	HasReceipt  bool
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation. Validation happens here, at the
// store boundary, for every caller.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if !entity.ValidExpenseCategory(input.Category) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"unknown expense category",
			domainerror.ErrInvalidEnum,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingExpenseFields,
			"date is required",
			domainerror.ErrMissingFields,
		)
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Category,
		input.Amount,
		input.Date,
		input.Description,
		input.HasReceipt,
	)

	// The remote path must surface failures: the caller needs the canonical row.
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
