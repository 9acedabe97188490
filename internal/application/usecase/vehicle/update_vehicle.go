package vehicle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// UpdateVehicleInput represents the input for vehicle update. Nil fields are
// left unchanged.
type UpdateVehicleInput struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Make               *string
	Model              *string
	Year               *string
	RegistrationNumber *string
	FuelType           *entity.FuelType
	RegistrationDue    *time.Time
	InsuranceDue       *time.Time
	ServiceDue         *time.Time
}

// UpdateVehicleOutput represents the output of vehicle update.
type UpdateVehicleOutput struct {
	Vehicle *entity.Vehicle
}

// UpdateVehicleUseCase handles vehicle update logic.
type UpdateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewUpdateVehicleUseCase creates a new UpdateVehicleUseCase instance.
func NewUpdateVehicleUseCase(vehicleRepo adapter.VehicleRepository) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{
		vehicleRepo: vehicleRepo,
	}
}

// Execute merges the provided fields into the stored vehicle and persists it.
func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, input UpdateVehicleInput) (*UpdateVehicleOutput, error) {
	vehicle, err := uc.vehicleRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeVehicleNotFound,
				"vehicle not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}

	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.RegistrationNumber != nil {
		vehicle.RegistrationNumber = *input.RegistrationNumber
	}
	if input.FuelType != nil {
		if !entity.ValidFuelType(*input.FuelType) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidFuelType,
				"unknown fuel type",
				domainerror.ErrInvalidEnum,
			)
		}
		vehicle.FuelType = *input.FuelType
	}
	if input.RegistrationDue != nil {
		vehicle.RegistrationDue = input.RegistrationDue
	}
	if input.InsuranceDue != nil {
		vehicle.InsuranceDue = input.InsuranceDue
	}
	if input.ServiceDue != nil {
		vehicle.ServiceDue = input.ServiceDue
	}
	vehicle.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return &UpdateVehicleOutput{Vehicle: vehicle}, nil
}
