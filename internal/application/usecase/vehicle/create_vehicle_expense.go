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

// CreateVehicleExpenseInput represents the input for vehicle expense creation.
type CreateVehicleExpenseInput struct {
	UserID      uuid.UUID
	VehicleID   uuid.UUID
	Type        entity.VehicleExpenseType
	Amount      decimal.Decimal
	Date        time.Time
	Litres      *decimal.Decimal
	Odometer    *int
	Provider    string
	Description string
}

// CreateVehicleExpenseOutput represents the output of vehicle expense creation.
type CreateVehicleExpenseOutput struct {
	Expense *entity.VehicleExpense
}

// CreateVehicleExpenseUseCase handles vehicle expense creation logic.
type CreateVehicleExpenseUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewCreateVehicleExpenseUseCase creates a new CreateVehicleExpenseUseCase instance.
func NewCreateVehicleExpenseUseCase(vehicleRepo adapter.VehicleRepository) *CreateVehicleExpenseUseCase {
	return &CreateVehicleExpenseUseCase{
		vehicleRepo: vehicleRepo,
	}
}

// Execute performs the vehicle expense creation. The parent vehicle must
// exist and belong to the caller.
func (uc *CreateVehicleExpenseUseCase) Execute(ctx context.Context, input CreateVehicleExpenseInput) (*CreateVehicleExpenseOutput, error) {
	if _, err := uc.vehicleRepo.FindByID(ctx, input.VehicleID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeVehicleNotFound,
				"vehicle not found",
				domainerror.ErrParentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}

	if !entity.ValidVehicleExpenseType(input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidVehicleExpenseType,
			"unknown vehicle expense type",
			domainerror.ErrInvalidEnum,
		)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidVehicleExpenseValue,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Litres != nil && input.Litres.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidVehicleExpenseValue,
			"litres must not be negative",
			domainerror.ErrNegativeValue,
		)
	}

	expense := entity.NewVehicleExpense(
		input.UserID,
		input.VehicleID,
		input.Type,
		input.Amount,
		input.Date,
		input.Litres,
		input.Odometer,
		input.Provider,
		input.Description,
	)

	if err := uc.vehicleRepo.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create vehicle expense: %w", err)
	}

	return &CreateVehicleExpenseOutput{Expense: expense}, nil
}
