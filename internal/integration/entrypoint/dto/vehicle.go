package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/application/usecase/vehicle"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateVehicleRequest represents the request body for vehicle creation.
type CreateVehicleRequest struct {
	Make               string  `json:"make" binding:"required,max=100"`
	Model              string  `json:"model" binding:"required,max=100"`
	Year               string  `json:"year,omitempty" binding:"omitempty,max=10"`
	RegistrationNumber string  `json:"registration_number,omitempty" binding:"omitempty,max=20"`
	FuelType           string  `json:"fuel_type" binding:"required,oneof=Petrol Diesel Electric Hybrid LPG"`
	RegistrationDue    *string `json:"registration_due,omitempty"`
	InsuranceDue       *string `json:"insurance_due,omitempty"`
	ServiceDue         *string `json:"service_due,omitempty"`
}

// UpdateVehicleRequest represents the request body for vehicle update.
type UpdateVehicleRequest struct {
	Make               *string `json:"make,omitempty" binding:"omitempty,max=100"`
	Model              *string `json:"model,omitempty" binding:"omitempty,max=100"`
	Year               *string `json:"year,omitempty" binding:"omitempty,max=10"`
	RegistrationNumber *string `json:"registration_number,omitempty" binding:"omitempty,max=20"`
	FuelType           *string `json:"fuel_type,omitempty" binding:"omitempty,oneof=Petrol Diesel Electric Hybrid LPG"`
	RegistrationDue    *string `json:"registration_due,omitempty"`
	InsuranceDue       *string `json:"insurance_due,omitempty"`
	ServiceDue         *string `json:"service_due,omitempty"`
}

// CreateVehicleExpenseRequest represents the request body for vehicle expense creation.
type CreateVehicleExpenseRequest struct {
	Type        string   `json:"type" binding:"required,oneof=Fuel Insurance Registration Service Inspection Consumable"`
	Amount      float64  `json:"amount" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Litres      *float64 `json:"litres,omitempty"`
	Odometer    *int     `json:"odometer,omitempty"`
	Provider    string   `json:"provider,omitempty" binding:"omitempty,max=100"`
	Description string   `json:"description,omitempty" binding:"omitempty,max=255"`
}

// UpdateVehicleExpenseRequest represents the request body for vehicle expense update.
type UpdateVehicleExpenseRequest struct {
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=Fuel Insurance Registration Service Inspection Consumable"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Litres      *float64 `json:"litres,omitempty"`
	Odometer    *int     `json:"odometer,omitempty"`
	Provider    *string  `json:"provider,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// VehicleResponse represents a single vehicle in API responses.
type VehicleResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	Year               string    `json:"year"`
	RegistrationNumber string    `json:"registration_number"`
	FuelType           string    `json:"fuel_type"`
	RegistrationDue    *string   `json:"registration_due,omitempty"`
	InsuranceDue       *string   `json:"insurance_due,omitempty"`
	ServiceDue         *string   `json:"service_due,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VehicleListResponse represents the response for listing vehicles.
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// VehicleExpenseResponse represents a single vehicle expense in API responses.
type VehicleExpenseResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	VehicleID   string    `json:"vehicle_id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Litres      *string   `json:"litres,omitempty"`
	Odometer    *int      `json:"odometer,omitempty"`
	Provider    string    `json:"provider"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VehicleExpenseListResponse represents the response for listing vehicle expenses.
type VehicleExpenseListResponse struct {
	Expenses []VehicleExpenseResponse `json:"expenses"`
}

// VehicleCostsResponse represents the aggregated costs of a vehicle.
type VehicleCostsResponse struct {
	VehicleID   string                   `json:"vehicle_id"`
	Total       string                   `json:"total"`
	TotalByType map[string]string        `json:"total_by_type"`
	Expenses    []VehicleExpenseResponse `json:"expenses"`
}

// ToVehicleResponse converts a Vehicle entity to a VehicleResponse DTO.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 v.ID.String(),
		UserID:             v.UserID.String(),
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		RegistrationNumber: v.RegistrationNumber,
		FuelType:           string(v.FuelType),
		RegistrationDue:    formatDatePtr(v.RegistrationDue),
		InsuranceDue:       formatDatePtr(v.InsuranceDue),
		ServiceDue:         formatDatePtr(v.ServiceDue),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// ToVehicleListResponse converts a slice of Vehicle entities to a list response.
func ToVehicleListResponse(vehicles []*entity.Vehicle) VehicleListResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, ToVehicleResponse(v))
	}
	return VehicleListResponse{Vehicles: out}
}

// ToVehicleExpenseResponse converts a VehicleExpense entity to a response DTO.
func ToVehicleExpenseResponse(e *entity.VehicleExpense) VehicleExpenseResponse {
	response := VehicleExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		VehicleID:   e.VehicleID.String(),
		Type:        string(e.Type),
		Amount:      e.Amount.String(),
		Date:        e.Date.Format("2006-01-02"),
		Odometer:    e.Odometer,
		Provider:    e.Provider,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Litres != nil {
		litres := e.Litres.String()
		response.Litres = &litres
	}
	return response
}

// ToVehicleExpenseListResponse converts a slice of VehicleExpense entities to a list response.
func ToVehicleExpenseListResponse(expenses []*entity.VehicleExpense) VehicleExpenseListResponse {
	out := make([]VehicleExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToVehicleExpenseResponse(e))
	}
	return VehicleExpenseListResponse{Expenses: out}
}

// ToVehicleCostsResponse converts vehicle cost aggregation output to a response DTO.
func ToVehicleCostsResponse(vehicleID string, output *vehicle.GetVehicleCostsOutput) VehicleCostsResponse {
	byType := make(map[string]string, len(output.TotalByType))
	for expenseType, total := range output.TotalByType {
		byType[string(expenseType)] = total.String()
	}
	expenses := make([]VehicleExpenseResponse, 0, len(output.Expenses))
	for _, e := range output.Expenses {
		expenses = append(expenses, ToVehicleExpenseResponse(e))
	}
	return VehicleCostsResponse{
		VehicleID:   vehicleID,
		Total:       output.Total.String(),
		TotalByType: byType,
		Expenses:    expenses,
	}
}

// formatDatePtr renders an optional date as YYYY-MM-DD.
func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
