package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteVehicleExpenseInput represents the input for vehicle expense deletion.
type DeleteVehicleExpenseInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteVehicleExpenseUseCase handles vehicle expense deletion logic.
type DeleteVehicleExpenseUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewDeleteVehicleExpenseUseCase creates a new DeleteVehicleExpenseUseCase instance.
func NewDeleteVehicleExpenseUseCase(vehicleRepo adapter.VehicleRepository) *DeleteVehicleExpenseUseCase {
	return &DeleteVehicleExpenseUseCase{
		vehicleRepo: vehicleRepo,
	}
}

// Execute performs the vehicle expense deletion.
func (uc *DeleteVehicleExpenseUseCase) Execute(ctx context.Context, input DeleteVehicleExpenseInput) error {
	if _, err := uc.vehicleRepo.FindExpenseByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeVehicleExpenseNotFound,
				"vehicle expense not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load vehicle expense: %w", err)
	}

	if err := uc.vehicleRepo.DeleteExpense(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete vehicle expense: %w", err)
	}
	return nil
}
