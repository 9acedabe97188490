package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if _, err := uc.expenseRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load expense: %w", err)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
