// Package vehicle contains vehicle-related use cases.
package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateVehicleInput represents the input for vehicle creation.
type CreateVehicleInput struct {
	UserID             uuid.UUID
	Make               string
	Model              string
	Year               string
	RegistrationNumber string
	FuelType           entity.FuelType
	RegistrationDue    *time.Time
	InsuranceDue       *time.Time
	ServiceDue         *time.Time
}

// CreateVehicleOutput represents the output of vehicle creation.
type CreateVehicleOutput struct {
	Vehicle *entity.Vehicle
}

// CreateVehicleUseCase handles vehicle creation logic.
type CreateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewCreateVehicleUseCase creates a new CreateVehicleUseCase instance.
func NewCreateVehicleUseCase(vehicleRepo adapter.VehicleRepository) *CreateVehicleUseCase {
	return &CreateVehicleUseCase{
		vehicleRepo: vehicleRepo,
	}
}

// Execute performs the vehicle creation.
func (uc *CreateVehicleUseCase) Execute(ctx context.Context, input CreateVehicleInput) (*CreateVehicleOutput, error) {
	if input.Make == "" || input.Model == "" || input.RegistrationNumber == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingVehicleFields,
			"make, model and registration number are required",
			domainerror.ErrMissingFields,
		)
	}

	if !entity.ValidFuelType(input.FuelType) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidFuelType,
			"unknown fuel type",
			domainerror.ErrInvalidEnum,
		)
	}

	vehicle := entity.NewVehicle(
		input.UserID,
		input.Make,
		input.Model,
		input.Year,
		input.RegistrationNumber,
		input.FuelType,
		input.RegistrationDue,
		input.InsuranceDue,
		input.ServiceDue,
	)

	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return &CreateVehicleOutput{Vehicle: vehicle}, nil
}
