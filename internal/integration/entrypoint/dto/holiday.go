package dto

import (
	"strconv"
	"time"

	"github.com/lifetrack/backend/internal/application/usecase/holiday"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateHolidayRequest represents the request body for holiday creation.
type CreateHolidayRequest struct {
	Description       string  `json:"description" binding:"required,max=255"`
	TravelMode        string  `json:"travel_mode" binding:"required,oneof=Flight Car Train Cruise Other"`
	DepartureDate     string  `json:"departure_date" binding:"required"`
	Days              int     `json:"days" binding:"required,min=1"`
	TransportCost     float64 `json:"transport_cost,omitempty"`
	AccommodationCost float64 `json:"accommodation_cost,omitempty"`
	InsuranceCost     float64 `json:"insurance_cost,omitempty"`
}

// UpdateHolidayRequest represents the request body for holiday update.
type UpdateHolidayRequest struct {
	Description       *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	TravelMode        *string  `json:"travel_mode,omitempty" binding:"omitempty,oneof=Flight Car Train Cruise Other"`
	DepartureDate     *string  `json:"departure_date,omitempty"`
	Days              *int     `json:"days,omitempty" binding:"omitempty,min=1"`
	TransportCost     *float64 `json:"transport_cost,omitempty"`
	AccommodationCost *float64 `json:"accommodation_cost,omitempty"`
	InsuranceCost     *float64 `json:"insurance_cost,omitempty"`
}

// AddDailyExpenseRequest represents the request body for adding a holiday daily expense.
type AddDailyExpenseRequest struct {
	DayNumber   int     `json:"day_number" binding:"required,min=1"`
	Type        string  `json:"type" binding:"required,oneof=Meals Transport Attraction Other"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	HasReceipt  bool    `json:"has_receipt,omitempty"`
}

// UpdateDailyExpenseRequest represents the request body for updating a holiday daily expense.
type UpdateDailyExpenseRequest struct {
	DayNumber   *int     `json:"day_number,omitempty" binding:"omitempty,min=1"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=Meals Transport Attraction Other"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	HasReceipt  *bool    `json:"has_receipt,omitempty"`
}

// HolidayResponse represents a single holiday in API responses.
type HolidayResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Description       string    `json:"description"`
	TravelMode        string    `json:"travel_mode"`
	DepartureDate     string    `json:"departure_date"`
	Days              int       `json:"days"`
	TransportCost     string    `json:"transport_cost"`
	AccommodationCost string    `json:"accommodation_cost"`
	InsuranceCost     string    `json:"insurance_cost"`
	TotalCost         string    `json:"total_cost"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HolidayListResponse represents the response for listing holidays.
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// DailyExpenseResponse represents a holiday daily expense in API responses.
type DailyExpenseResponse struct {
	ID          string    `json:"id"`
	HolidayID   string    `json:"holiday_id"`
	DayNumber   int       `json:"day_number"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	HasReceipt  bool      `json:"has_receipt"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DailyExpenseListResponse represents the response for listing holiday daily expenses.
type DailyExpenseListResponse struct {
	Expenses []DailyExpenseResponse `json:"expenses"`
}

// HolidayCostsResponse represents the full cost breakdown of a holiday.
type HolidayCostsResponse struct {
	Holiday    HolidayResponse        `json:"holiday"`
	BaseCost   string                 `json:"base_cost"`
	DailyTotal string                 `json:"daily_total"`
	GrandTotal string                 `json:"grand_total"`
	TotalByDay map[string]string      `json:"total_by_day"`
	Expenses   []DailyExpenseResponse `json:"expenses"`
}

// ToHolidayResponse converts a Holiday entity to a HolidayResponse DTO.
func ToHolidayResponse(h *entity.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:                h.ID.String(),
		UserID:            h.UserID.String(),
		Description:       h.Description,
		TravelMode:        string(h.TravelMode),
		DepartureDate:     h.DepartureDate.Format("2006-01-02"),
		Days:              h.Days,
		TransportCost:     h.TransportCost.String(),
		AccommodationCost: h.AccommodationCost.String(),
		InsuranceCost:     h.InsuranceCost.String(),
		TotalCost:         h.TotalCost.String(),
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         h.UpdatedAt,
	}
}

// ToHolidayListResponse converts a slice of Holiday entities to a list response.
func ToHolidayListResponse(holidays []*entity.Holiday) HolidayListResponse {
	out := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, ToHolidayResponse(h))
	}
	return HolidayListResponse{Holidays: out}
}

// ToDailyExpenseResponse converts a HolidayDailyExpense entity to a response DTO.
func ToDailyExpenseResponse(e *entity.HolidayDailyExpense) DailyExpenseResponse {
	return DailyExpenseResponse{
		ID:          e.ID.String(),
		HolidayID:   e.HolidayID.String(),
		DayNumber:   e.DayNumber,
		Type:        string(e.Type),
		Amount:      e.Amount.String(),
		Description: e.Description,
		HasReceipt:  e.HasReceipt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToDailyExpenseListResponse converts a slice of HolidayDailyExpense entities to a list response.
func ToDailyExpenseListResponse(expenses []*entity.HolidayDailyExpense) DailyExpenseListResponse {
	out := make([]DailyExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToDailyExpenseResponse(e))
	}
	return DailyExpenseListResponse{Expenses: out}
}

// ToHolidayCostsResponse converts holiday cost aggregation output to a response DTO.
func ToHolidayCostsResponse(output *holiday.GetHolidayCostsOutput) HolidayCostsResponse {
	byDay := make(map[string]string, len(output.TotalByDay))
	for day, total := range output.TotalByDay {
		byDay[strconv.Itoa(day)] = total.String()
	}
	expenses := make([]DailyExpenseResponse, 0, len(output.Expenses))
	for _, e := range output.Expenses {
		expenses = append(expenses, ToDailyExpenseResponse(e))
	}
	return HolidayCostsResponse{
		Holiday:    ToHolidayResponse(output.Holiday),
		BaseCost:   output.BaseCost.String(),
		DailyTotal: output.DailyTotal.String(),
		GrandTotal: output.GrandTotal.String(),
		TotalByDay: byDay,
		Expenses:   expenses,
	}
}
