package vehicle

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

// UpdateVehicleExpenseInput represents the input for vehicle expense update.
// Nil fields are left unchanged.
type UpdateVehicleExpenseInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        *entity.VehicleExpenseType
	Amount      *decimal.Decimal
	Date        *time.Time
	Litres      *decimal.Decimal
	Odometer    *int
	Provider    *string
	Description *string
}

// UpdateVehicleExpenseOutput represents the output of vehicle expense update.
type UpdateVehicleExpenseOutput struct {
	Expense *entity.VehicleExpense
}

// UpdateVehicleExpenseUseCase handles vehicle expense update logic.
type UpdateVehicleExpenseUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewUpdateVehicleExpenseUseCase creates a new UpdateVehicleExpenseUseCase instance.
func NewUpdateVehicleExpenseUseCase(vehicleRepo adapter.VehicleRepository) *UpdateVehicleExpenseUseCase {
	return &UpdateVehicleExpenseUseCase{
		vehicleRepo: vehicleRepo,
	}
}

// Execute merges the provided fields into the stored expense and persists it.
func (uc *UpdateVehicleExpenseUseCase) Execute(ctx context.Context, input UpdateVehicleExpenseInput) (*UpdateVehicleExpenseOutput, error) {
	expense, err := uc.vehicleRepo.FindExpenseByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeVehicleExpenseNotFound,
				"vehicle expense not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load vehicle expense: %w", err)
	}

	if input.Type != nil {
		if !entity.ValidVehicleExpenseType(*input.Type) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidVehicleExpenseType,
				"unknown vehicle expense type",
				domainerror.ErrInvalidEnum,
			)
		}
		expense.Type = *input.Type
	}
	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidVehicleExpenseValue,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Litres != nil {
		if input.Litres.IsNegative() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidVehicleExpenseValue,
				"litres must not be negative",
				domainerror.ErrNegativeValue,
			)
		}
		expense.Litres = input.Litres
	}
	if input.Odometer != nil {
		expense.Odometer = input.Odometer
	}
	if input.Provider != nil {
		expense.Provider = *input.Provider
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.UpdateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update vehicle expense: %w", err)
	}

	return &UpdateVehicleExpenseOutput{Expense: expense}, nil
}
