package holiday

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

// AddDailyExpenseInput represents the input for recording a per-day expense.
type AddDailyExpenseInput struct {
	UserID      uuid.UUID
	HolidayID   uuid.UUID
	DayNumber   int
	Type        entity.DailyExpenseType
	Amount      decimal.Decimal
	Description string
	HasReceipt  bool
}

// AddDailyExpenseOutput represents the output of recording a per-day expense.
type AddDailyExpenseOutput struct {
	Expense *entity.HolidayDailyExpense
}

// AddDailyExpenseUseCase handles daily expense creation logic.
type AddDailyExpenseUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewAddDailyExpenseUseCase creates a new AddDailyExpenseUseCase instance.
func NewAddDailyExpenseUseCase(holidayRepo adapter.HolidayRepository) *AddDailyExpenseUseCase {
	return &AddDailyExpenseUseCase{holidayRepo: holidayRepo}
}

// Execute records an expense against one day of a holiday owned by the caller.
// The day number must fall inside the holiday's duration.
func (uc *AddDailyExpenseUseCase) Execute(ctx context.Context, input AddDailyExpenseInput) (*AddDailyExpenseOutput, error) {
	holiday, err := uc.holidayRepo.FindByID(ctx, input.HolidayID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeHolidayNotFound,
				"holiday not found",
				domainerror.ErrParentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load holiday: %w", err)
	}

	if input.DayNumber < 1 || input.DayNumber > holiday.Days {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidDayNumber,
			fmt.Sprintf("day number %d outside holiday duration of %d days", input.DayNumber, holiday.Days),
			domainerror.ErrInvalidDayNumber,
		)
	}

	if !entity.ValidDailyExpenseType(input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidDailyExpenseType,
			fmt.Sprintf("invalid daily expense type: %s", input.Type),
			domainerror.ErrInvalidEnum,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidHolidayCost,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	expense := entity.NewHolidayDailyExpense(
		input.UserID,
		input.HolidayID,
		input.DayNumber,
		input.Type,
		input.Amount,
		input.Description,
		input.HasReceipt,
	)

	if err := uc.holidayRepo.CreateDailyExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create holiday daily expense: %w", err)
	}

	return &AddDailyExpenseOutput{Expense: expense}, nil
}

// ListDailyExpensesInput represents the input for listing a holiday's daily
// expenses. When Day is non-nil only that day's expenses are returned.
type ListDailyExpensesInput struct {
	UserID    uuid.UUID
	HolidayID uuid.UUID
	Day       *int
}

// ListDailyExpensesOutput represents the output of listing daily expenses.
type ListDailyExpensesOutput struct {
	Expenses []*entity.HolidayDailyExpense
}

// ListDailyExpensesUseCase handles daily expense listing logic.
type ListDailyExpensesUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewListDailyExpensesUseCase creates a new ListDailyExpensesUseCase instance.
func NewListDailyExpensesUseCase(holidayRepo adapter.HolidayRepository) *ListDailyExpensesUseCase {
	return &ListDailyExpensesUseCase{holidayRepo: holidayRepo}
}

// Execute lists daily expenses for a holiday, optionally filtered to one day.
func (uc *ListDailyExpensesUseCase) Execute(ctx context.Context, input ListDailyExpensesInput) (*ListDailyExpensesOutput, error) {
	if _, err := uc.holidayRepo.FindByID(ctx, input.HolidayID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeHolidayNotFound,
				"holiday not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load holiday: %w", err)
	}

	var (
		expenses []*entity.HolidayDailyExpense
		err      error
	)
	if input.Day != nil {
		expenses, err = uc.holidayRepo.FindDailyExpensesByDay(ctx, input.HolidayID, input.UserID, *input.Day)
	} else {
		expenses, err = uc.holidayRepo.FindDailyExpensesByHoliday(ctx, input.HolidayID, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday daily expenses: %w", err)
	}
	return &ListDailyExpensesOutput{Expenses: expenses}, nil
}

// UpdateDailyExpenseInput represents the input for updating a daily expense.
// Nil fields are left unchanged.
type UpdateDailyExpenseInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DayNumber   *int
	Type        *entity.DailyExpenseType
	Amount      *decimal.Decimal
	Description *string
	HasReceipt  *bool
}

// UpdateDailyExpenseOutput represents the output of updating a daily expense.
type UpdateDailyExpenseOutput struct {
	Expense *entity.HolidayDailyExpense
}

// UpdateDailyExpenseUseCase handles daily expense update logic.
type UpdateDailyExpenseUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewUpdateDailyExpenseUseCase creates a new UpdateDailyExpenseUseCase instance.
func NewUpdateDailyExpenseUseCase(holidayRepo adapter.HolidayRepository) *UpdateDailyExpenseUseCase {
	return &UpdateDailyExpenseUseCase{holidayRepo: holidayRepo}
}

// Execute merges the provided fields into the stored expense and persists it.
// A day number change is revalidated against the parent holiday's duration.
func (uc *UpdateDailyExpenseUseCase) Execute(ctx context.Context, input UpdateDailyExpenseInput) (*UpdateDailyExpenseOutput, error) {
	expense, err := uc.holidayRepo.FindDailyExpenseByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeDailyExpenseNotFound,
				"holiday daily expense not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load holiday daily expense: %w", err)
	}

	if input.DayNumber != nil {
		holiday, err := uc.holidayRepo.FindByID(ctx, expense.HolidayID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrRecordNotFound) {
				return nil, domainerror.NewRecordError(
					domainerror.ErrCodeHolidayNotFound,
					"holiday not found",
					domainerror.ErrParentNotFound,
				)
			}
			return nil, fmt.Errorf("failed to load holiday: %w", err)
		}
		if *input.DayNumber < 1 || *input.DayNumber > holiday.Days {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidDayNumber,
				fmt.Sprintf("day number %d outside holiday duration of %d days", *input.DayNumber, holiday.Days),
				domainerror.ErrInvalidDayNumber,
			)
		}
		expense.DayNumber = *input.DayNumber
	}
	if input.Type != nil {
		if !entity.ValidDailyExpenseType(*input.Type) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidDailyExpenseType,
				fmt.Sprintf("invalid daily expense type: %s", *input.Type),
				domainerror.ErrInvalidEnum,
			)
		}
		expense.Type = *input.Type
	}
	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHolidayCost,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.HasReceipt != nil {
		expense.HasReceipt = *input.HasReceipt
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.holidayRepo.UpdateDailyExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update holiday daily expense: %w", err)
	}

	return &UpdateDailyExpenseOutput{Expense: expense}, nil
}

// DeleteDailyExpenseInput represents the input for deleting a daily expense.
type DeleteDailyExpenseInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteDailyExpenseUseCase handles daily expense deletion logic.
type DeleteDailyExpenseUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewDeleteDailyExpenseUseCase creates a new DeleteDailyExpenseUseCase instance.
func NewDeleteDailyExpenseUseCase(holidayRepo adapter.HolidayRepository) *DeleteDailyExpenseUseCase {
	return &DeleteDailyExpenseUseCase{holidayRepo: holidayRepo}
}

// Execute performs the daily expense deletion.
func (uc *DeleteDailyExpenseUseCase) Execute(ctx context.Context, input DeleteDailyExpenseInput) error {
	if _, err := uc.holidayRepo.FindDailyExpenseByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeDailyExpenseNotFound,
				"holiday daily expense not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load holiday daily expense: %w", err)
	}
	if err := uc.holidayRepo.DeleteDailyExpense(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete holiday daily expense: %w", err)
	}
	return nil
}
