package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuelType represents the fuel type of a vehicle.
type FuelType string

const (
	FuelTypePetrol   FuelType = "Petrol"
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypeElectric FuelType = "Electric"
	FuelTypeHybrid   FuelType = "Hybrid"
	FuelTypeLPG      FuelType = "LPG"
)

// ValidFuelType reports whether the fuel type is one of the closed set.
func ValidFuelType(t FuelType) bool {
	switch t {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid, FuelTypeLPG:
		return true
	}
	return false
}

// Vehicle represents a vehicle owned by a user. A vehicle has child
// VehicleExpense records; deleting a vehicle removes them together.
type Vehicle struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Make               string
	Model              string
	Year               string
	RegistrationNumber string
	FuelType           FuelType
	RegistrationDue    *time.Time
	InsuranceDue       *time.Time
	ServiceDue         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewVehicle creates a new Vehicle entity.
func NewVehicle(
	userID uuid.UUID,
	vehicleMake, model, year, registrationNumber string,
	fuelType FuelType,
	registrationDue, insuranceDue, serviceDue *time.Time,
) *Vehicle {
	now := time.Now().UTC()
	return &Vehicle{
		ID:                 uuid.New(),
		UserID:             userID,
		Make:               vehicleMake,
		Model:              model,
		Year:               year,
		RegistrationNumber: registrationNumber,
		FuelType:           fuelType,
		RegistrationDue:    registrationDue,
		InsuranceDue:       insuranceDue,
		ServiceDue:         serviceDue,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// VehicleExpenseType represents the type of a vehicle expense.
type VehicleExpenseType string

const (
	VehicleExpenseTypeFuel         VehicleExpenseType = "Fuel"
	VehicleExpenseTypeInsurance    VehicleExpenseType = "Insurance"
	VehicleExpenseTypeRegistration VehicleExpenseType = "Registration"
	VehicleExpenseTypeService      VehicleExpenseType = "Service"
	VehicleExpenseTypeInspection   VehicleExpenseType = "Inspection"
	VehicleExpenseTypeConsumable   VehicleExpenseType = "Consumable"
)

// ValidVehicleExpenseType reports whether the type is one of the closed set.
func ValidVehicleExpenseType(t VehicleExpenseType) bool {
	switch t {
	case VehicleExpenseTypeFuel, VehicleExpenseTypeInsurance,
		VehicleExpenseTypeRegistration, VehicleExpenseTypeService,
		VehicleExpenseTypeInspection, VehicleExpenseTypeConsumable:
		return true
	}
	return false
}

// VehicleExpense represents a cost incurred for a specific vehicle.
// Litres, Odometer and Provider are type-specific optional fields.
type VehicleExpense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	VehicleID   uuid.UUID
	Type        VehicleExpenseType
	Amount      decimal.Decimal
	Date        time.Time
	Litres      *decimal.Decimal
	Odometer    *int
	Provider    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewVehicleExpense creates a new VehicleExpense entity.
func NewVehicleExpense(
	userID, vehicleID uuid.UUID,
	expenseType VehicleExpenseType,
	amount decimal.Decimal,
	date time.Time,
	litres *decimal.Decimal,
	odometer *int,
	provider, description string,
) *VehicleExpense {
	now := time.Now().UTC()
	return &VehicleExpense{
		ID:          uuid.New(),
		UserID:      userID,
		VehicleID:   vehicleID,
		Type:        expenseType,
		Amount:      amount,
		Date:        date,
		Litres:      litres,
		Odometer:    odometer,
		Provider:    provider,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
