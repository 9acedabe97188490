package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// GetVehicleCostsInput represents the input for the vehicle cost summary.
type GetVehicleCostsInput struct {
	VehicleID uuid.UUID
	UserID    uuid.UUID
}

// GetVehicleCostsOutput represents the vehicle cost summary: the expense
// records plus their total and a per-type breakdown, computed on demand.
type GetVehicleCostsOutput struct {
	Expenses    []*entity.VehicleExpense
	Total       decimal.Decimal
	TotalByType map[entity.VehicleExpenseType]decimal.Decimal
}

// GetVehicleCostsUseCase computes the running cost summary for one vehicle.
type GetVehicleCostsUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewGetVehicleCostsUseCase creates a new GetVehicleCostsUseCase instance.
func NewGetVehicleCostsUseCase(vehicleRepo adapter.VehicleRepository) *GetVehicleCostsUseCase {
	return &GetVehicleCostsUseCase{
		vehicleRepo: vehicleRepo,
	}
}

// Execute sums the vehicle's expense records.
func (uc *GetVehicleCostsUseCase) Execute(ctx context.Context, input GetVehicleCostsInput) (*GetVehicleCostsOutput, error) {
	if _, err := uc.vehicleRepo.FindByID(ctx, input.VehicleID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeVehicleNotFound,
				"vehicle not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}

	expenses, err := uc.vehicleRepo.FindExpensesByVehicle(ctx, input.VehicleID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle expenses: %w", err)
	}

	total := decimal.Zero
	byType := make(map[entity.VehicleExpenseType]decimal.Decimal)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		byType[e.Type] = byType[e.Type].Add(e.Amount)
	}

	return &GetVehicleCostsOutput{
		Expenses:    expenses,
		Total:       total,
		TotalByType: byType,
	}, nil
}
