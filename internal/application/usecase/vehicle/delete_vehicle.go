package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteVehicleInput represents the input for vehicle deletion.
type DeleteVehicleInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteVehicleUseCase handles vehicle deletion. The vehicle and all its
// expense records go together in one transaction.
type DeleteVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewDeleteVehicleUseCase creates a new DeleteVehicleUseCase instance.
func NewDeleteVehicleUseCase(vehicleRepo adapter.VehicleRepository) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{
		vehicleRepo: vehicleRepo,
	}
}

// Execute performs the cascading vehicle deletion.
func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, input DeleteVehicleInput) error {
	if _, err := uc.vehicleRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeVehicleNotFound,
				"vehicle not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load vehicle: %w", err)
	}

	if err := uc.vehicleRepo.DeleteWithExpenses(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
