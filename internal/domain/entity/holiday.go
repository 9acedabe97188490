package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TravelMode represents how the user travels to a holiday destination.
type TravelMode string

const (
	TravelModeFlight TravelMode = "Flight"
	TravelModeCar    TravelMode = "Car"
	TravelModeTrain  TravelMode = "Train"
	TravelModeCruise TravelMode = "Cruise"
	TravelModeOther  TravelMode = "Other"
)

// ValidTravelMode reports whether the travel mode is one of the closed set.
func ValidTravelMode(m TravelMode) bool {
	switch m {
	case TravelModeFlight, TravelModeCar, TravelModeTrain, TravelModeCruise, TravelModeOther:
		return true
	}
	return false
}

// Holiday represents a planned or taken trip. TotalCost is a cached derived
// value: it must always equal the sum of the three direct cost fields and is
// recomputed on every write that touches them.
type Holiday struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Description       string
	TravelMode        TravelMode
	DepartureDate     time.Time
	Days              int
	TransportCost     decimal.Decimal
	AccommodationCost decimal.Decimal
	InsuranceCost     decimal.Decimal
	TotalCost         decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewHoliday creates a new Holiday entity with TotalCost derived from the
// three cost components.
func NewHoliday(
	userID uuid.UUID,
	description string,
	travelMode TravelMode,
	departureDate time.Time,
	days int,
	transportCost, accommodationCost, insuranceCost decimal.Decimal,
) *Holiday {
	now := time.Now().UTC()
	h := &Holiday{
		ID:                uuid.New(),
		UserID:            userID,
		Description:       description,
		TravelMode:        travelMode,
		DepartureDate:     departureDate,
		Days:              days,
		TransportCost:     transportCost,
		AccommodationCost: accommodationCost,
		InsuranceCost:     insuranceCost,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	h.RecomputeTotalCost()
	return h
}

// RecomputeTotalCost refreshes the derived TotalCost field from the three
// cost components.
func (h *Holiday) RecomputeTotalCost() {
	h.TotalCost = h.TransportCost.Add(h.AccommodationCost).Add(h.InsuranceCost)
}

// DailyExpenseType represents the kind of a per-day holiday expense.
type DailyExpenseType string

const (
	DailyExpenseTypeMeals      DailyExpenseType = "Meals"
	DailyExpenseTypeTransport  DailyExpenseType = "Transport"
	DailyExpenseTypeAttraction DailyExpenseType = "Attraction"
	DailyExpenseTypeOther      DailyExpenseType = "Other"
)

// ValidDailyExpenseType reports whether the type is one of the closed set.
func ValidDailyExpenseType(t DailyExpenseType) bool {
	switch t {
	case DailyExpenseTypeMeals, DailyExpenseTypeTransport,
		DailyExpenseTypeAttraction, DailyExpenseTypeOther:
		return true
	}
	return false
}

// HolidayDailyExpense represents an expense incurred on a specific day of a
// holiday, keyed by (HolidayID, DayNumber).
type HolidayDailyExpense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	HolidayID   uuid.UUID
	DayNumber   int
	Type        DailyExpenseType
	Amount      decimal.Decimal
	Description string
	HasReceipt  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewHolidayDailyExpense creates a new HolidayDailyExpense entity.
func NewHolidayDailyExpense(
	userID, holidayID uuid.UUID,
	dayNumber int,
	expenseType DailyExpenseType,
	amount decimal.Decimal,
	description string,
	hasReceipt bool,
) *HolidayDailyExpense {
	now := time.Now().UTC()
	return &HolidayDailyExpense{
		ID:          uuid.New(),
		UserID:      userID,
		HolidayID:   holidayID,
		DayNumber:   dayNumber,
		Type:        expenseType,
		Amount:      amount,
		Description: description,
		HasReceipt:  hasReceipt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
