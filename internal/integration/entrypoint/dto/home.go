package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateHomeRequest represents the request body for home creation.
type CreateHomeRequest struct {
	Name           string   `json:"name" binding:"required,max=100"`
	Type           string   `json:"type" binding:"required,oneof=House Apartment Townhouse Unit Other"`
	Ownership      string   `json:"ownership" binding:"required,oneof=Owned Mortgaged Rented"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	Address        string   `json:"address,omitempty" binding:"omitempty,max=255"`
}

// UpdateHomeRequest represents the request body for home update.
type UpdateHomeRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Type           *string  `json:"type,omitempty" binding:"omitempty,oneof=House Apartment Townhouse Unit Other"`
	Ownership      *string  `json:"ownership,omitempty" binding:"omitempty,oneof=Owned Mortgaged Rented"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	Address        *string  `json:"address,omitempty" binding:"omitempty,max=255"`
}

// AddHomeInsuranceRequest represents the request body for adding a home insurance policy.
type AddHomeInsuranceRequest struct {
	Provider     string  `json:"provider" binding:"required,max=100"`
	PolicyNumber string  `json:"policy_number,omitempty" binding:"omitempty,max=50"`
	Premium      float64 `json:"premium" binding:"required"`
	RenewalDate  string  `json:"renewal_date" binding:"required"`
}

// UpdateHomeInsuranceRequest represents the request body for updating a home insurance policy.
type UpdateHomeInsuranceRequest struct {
	Provider     *string  `json:"provider,omitempty" binding:"omitempty,max=100"`
	PolicyNumber *string  `json:"policy_number,omitempty" binding:"omitempty,max=50"`
	Premium      *float64 `json:"premium,omitempty"`
	RenewalDate  *string  `json:"renewal_date,omitempty"`
}

// AddSmokeAlarmRequest represents the request body for adding a smoke alarm.
type AddSmokeAlarmRequest struct {
	Location        string  `json:"location" binding:"required,max=100"`
	Status          string  `json:"status" binding:"required,oneof=Working 'Needs Battery' Faulty"`
	LastTested      *string `json:"last_tested,omitempty"`
	BatteryReplaced *string `json:"battery_replaced,omitempty"`
}

// UpdateSmokeAlarmRequest represents the request body for updating a smoke alarm.
type UpdateSmokeAlarmRequest struct {
	Location        *string `json:"location,omitempty" binding:"omitempty,max=100"`
	Status          *string `json:"status,omitempty" binding:"omitempty,oneof=Working 'Needs Battery' Faulty"`
	LastTested      *string `json:"last_tested,omitempty"`
	BatteryReplaced *string `json:"battery_replaced,omitempty"`
}

// AddRepairRequest represents the request body for adding a repair or maintenance job.
type AddRepairRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date" binding:"required"`
	Contractor  string  `json:"contractor,omitempty" binding:"omitempty,max=100"`
}

// UpdateRepairRequest represents the request body for updating a repair or maintenance job.
type UpdateRepairRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Cost        *float64 `json:"cost,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Contractor  *string  `json:"contractor,omitempty" binding:"omitempty,max=100"`
}

// AddUtilityBillRequest represents the request body for adding a utility bill.
type AddUtilityBillRequest struct {
	Type    string  `json:"type" binding:"required,oneof=Electricity Gas Water Internet Other"`
	Amount  float64 `json:"amount" binding:"required"`
	DueDate string  `json:"due_date" binding:"required"`
	Paid    bool    `json:"paid,omitempty"`
}

// UpdateUtilityBillRequest represents the request body for updating a utility bill.
type UpdateUtilityBillRequest struct {
	Type    *string  `json:"type,omitempty" binding:"omitempty,oneof=Electricity Gas Water Internet Other"`
	Amount  *float64 `json:"amount,omitempty"`
	DueDate *string  `json:"due_date,omitempty"`
	Paid    *bool    `json:"paid,omitempty"`
}

// HomeResponse represents a single home in API responses.
type HomeResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Ownership      string    `json:"ownership"`
	MonthlyPayment *string   `json:"monthly_payment,omitempty"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HomeListResponse represents the response for listing homes.
type HomeListResponse struct {
	Homes []HomeResponse `json:"homes"`
}

// HomeInsuranceResponse represents a home insurance policy in API responses.
type HomeInsuranceResponse struct {
	ID           string    `json:"id"`
	HomeID       string    `json:"home_id"`
	Provider     string    `json:"provider"`
	PolicyNumber string    `json:"policy_number"`
	Premium      string    `json:"premium"`
	RenewalDate  string    `json:"renewal_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HomeInsuranceListResponse represents the response for listing home insurance policies.
type HomeInsuranceListResponse struct {
	Insurances []HomeInsuranceResponse `json:"insurances"`
}

// SmokeAlarmResponse represents a smoke alarm in API responses.
type SmokeAlarmResponse struct {
	ID              string    `json:"id"`
	HomeID          string    `json:"home_id"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	LastTested      *string   `json:"last_tested,omitempty"`
	BatteryReplaced *string   `json:"battery_replaced,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SmokeAlarmListResponse represents the response for listing smoke alarms.
type SmokeAlarmListResponse struct {
	Alarms []SmokeAlarmResponse `json:"alarms"`
}

// RepairResponse represents a repair or maintenance job in API responses.
type RepairResponse struct {
	ID          string    `json:"id"`
	HomeID      string    `json:"home_id"`
	Description string    `json:"description"`
	Cost        string    `json:"cost"`
	Date        string    `json:"date"`
	Contractor  string    `json:"contractor"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RepairListResponse represents the response for listing repairs.
type RepairListResponse struct {
	Repairs []RepairResponse `json:"repairs"`
}

// UtilityBillResponse represents a utility bill in API responses.
type UtilityBillResponse struct {
	ID        string    `json:"id"`
	HomeID    string    `json:"home_id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	DueDate   string    `json:"due_date"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UtilityBillListResponse represents the response for listing utility bills.
type UtilityBillListResponse struct {
	Bills []UtilityBillResponse `json:"bills"`
}

// ToHomeResponse converts a Home entity to a HomeResponse DTO.
func ToHomeResponse(h *entity.Home) HomeResponse {
	response := HomeResponse{
		ID:        h.ID.String(),
		UserID:    h.UserID.String(),
		Name:      h.Name,
		Type:      string(h.Type),
		Ownership: string(h.Ownership),
		Address:   h.Address,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
	if h.MonthlyPayment != nil {
		payment := h.MonthlyPayment.String()
		response.MonthlyPayment = &payment
	}
	return response
}

// ToHomeListResponse converts a slice of Home entities to a list response.
func ToHomeListResponse(homes []*entity.Home) HomeListResponse {
	out := make([]HomeResponse, 0, len(homes))
	for _, h := range homes {
		out = append(out, ToHomeResponse(h))
	}
	return HomeListResponse{Homes: out}
}

// ToHomeInsuranceResponse converts a HomeInsurance entity to a response DTO.
func ToHomeInsuranceResponse(i *entity.HomeInsurance) HomeInsuranceResponse {
	return HomeInsuranceResponse{
		ID:           i.ID.String(),
		HomeID:       i.HomeID.String(),
		Provider:     i.Provider,
		PolicyNumber: i.PolicyNumber,
		Premium:      i.Premium.String(),
		RenewalDate:  i.RenewalDate.Format("2006-01-02"),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// ToHomeInsuranceListResponse converts a slice of HomeInsurance entities to a list response.
func ToHomeInsuranceListResponse(insurances []*entity.HomeInsurance) HomeInsuranceListResponse {
	out := make([]HomeInsuranceResponse, 0, len(insurances))
	for _, i := range insurances {
		out = append(out, ToHomeInsuranceResponse(i))
	}
	return HomeInsuranceListResponse{Insurances: out}
}

// ToSmokeAlarmResponse converts a SmokeAlarm entity to a response DTO.
func ToSmokeAlarmResponse(a *entity.SmokeAlarm) SmokeAlarmResponse {
	return SmokeAlarmResponse{
		ID:              a.ID.String(),
		HomeID:          a.HomeID.String(),
		Location:        a.Location,
		Status:          string(a.Status),
		LastTested:      formatDatePtr(a.LastTested),
		BatteryReplaced: formatDatePtr(a.BatteryReplaced),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ToSmokeAlarmListResponse converts a slice of SmokeAlarm entities to a list response.
func ToSmokeAlarmListResponse(alarms []*entity.SmokeAlarm) SmokeAlarmListResponse {
	out := make([]SmokeAlarmResponse, 0, len(alarms))
	for _, a := range alarms {
		out = append(out, ToSmokeAlarmResponse(a))
	}
	return SmokeAlarmListResponse{Alarms: out}
}

// ToRepairResponse converts a RepairMaintenance entity to a response DTO.
func ToRepairResponse(r *entity.RepairMaintenance) RepairResponse {
	return RepairResponse{
		ID:          r.ID.String(),
		HomeID:      r.HomeID.String(),
		Description: r.Description,
		Cost:        r.Cost.String(),
		Date:        r.Date.Format("2006-01-02"),
		Contractor:  r.Contractor,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToRepairListResponse converts a slice of RepairMaintenance entities to a list response.
func ToRepairListResponse(repairs []*entity.RepairMaintenance) RepairListResponse {
	out := make([]RepairResponse, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, ToRepairResponse(r))
	}
	return RepairListResponse{Repairs: out}
}

// ToUtilityBillResponse converts a UtilityBill entity to a response DTO.
func ToUtilityBillResponse(b *entity.UtilityBill) UtilityBillResponse {
	return UtilityBillResponse{
		ID:        b.ID.String(),
		HomeID:    b.HomeID.String(),
		Type:      string(b.Type),
		Amount:    b.Amount.String(),
		DueDate:   b.DueDate.Format("2006-01-02"),
		Paid:      b.Paid,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToUtilityBillListResponse converts a slice of UtilityBill entities to a list response.
func ToUtilityBillListResponse(bills []*entity.UtilityBill) UtilityBillListResponse {
	out := make([]UtilityBillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, ToUtilityBillResponse(b))
	}
	return UtilityBillListResponse{Bills: out}
}
