package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HomeType represents the kind of dwelling.
type HomeType string

const (
	HomeTypeHouse     HomeType = "House"
	HomeTypeApartment HomeType = "Apartment"
	HomeTypeTownhouse HomeType = "Townhouse"
	HomeTypeUnit      HomeType = "Unit"
	HomeTypeOther     HomeType = "Other"
)

// ValidHomeType reports whether the home type is one of the closed set.
func ValidHomeType(t HomeType) bool {
	switch t {
	case HomeTypeHouse, HomeTypeApartment, HomeTypeTownhouse, HomeTypeUnit, HomeTypeOther:
		return true
	}
	return false
}

// OwnershipType represents how the user holds the home.
type OwnershipType string

const (
	OwnershipTypeOwned     OwnershipType = "Owned"
	OwnershipTypeMortgaged OwnershipType = "Mortgaged"
	OwnershipTypeRented    OwnershipType = "Rented"
)

// ValidOwnershipType reports whether the ownership type is one of the closed set.
func ValidOwnershipType(t OwnershipType) bool {
	switch t {
	case OwnershipTypeOwned, OwnershipTypeMortgaged, OwnershipTypeRented:
		return true
	}
	return false
}

// Home represents a dwelling owned by a user. A home has four independent
// child collections: insurances, smoke alarms, repairs and utility bills.
// Deleting a home cascades all four.
type Home struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           HomeType
	Ownership      OwnershipType
	MonthlyPayment *decimal.Decimal
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewHome creates a new Home entity.
func NewHome(
	userID uuid.UUID,
	name string,
	homeType HomeType,
	ownership OwnershipType,
	monthlyPayment *decimal.Decimal,
	address string,
) *Home {
	now := time.Now().UTC()
	return &Home{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Type:           homeType,
		Ownership:      ownership,
		MonthlyPayment: monthlyPayment,
		Address:        address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// HomeInsurance represents an insurance policy covering a home.
type HomeInsurance struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	HomeID       uuid.UUID
	Provider     string
	PolicyNumber string
	Premium      decimal.Decimal
	RenewalDate  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewHomeInsurance creates a new HomeInsurance entity.
func NewHomeInsurance(
	userID, homeID uuid.UUID,
	provider, policyNumber string,
	premium decimal.Decimal,
	renewalDate time.Time,
) *HomeInsurance {
	now := time.Now().UTC()
	return &HomeInsurance{
		ID:           uuid.New(),
		UserID:       userID,
		HomeID:       homeID,
		Provider:     provider,
		PolicyNumber: policyNumber,
		Premium:      premium,
		RenewalDate:  renewalDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SmokeAlarmStatus represents the reported condition of a smoke alarm.
type SmokeAlarmStatus string

const (
	SmokeAlarmStatusWorking      SmokeAlarmStatus = "Working"
	SmokeAlarmStatusNeedsBattery SmokeAlarmStatus = "Needs Battery"
	SmokeAlarmStatusFaulty       SmokeAlarmStatus = "Faulty"
)

// ValidSmokeAlarmStatus reports whether the status is one of the closed set.
func ValidSmokeAlarmStatus(s SmokeAlarmStatus) bool {
	switch s {
	case SmokeAlarmStatusWorking, SmokeAlarmStatusNeedsBattery, SmokeAlarmStatusFaulty:
		return true
	}
	return false
}

// SmokeAlarm represents a smoke alarm installed in a home.
type SmokeAlarm struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	HomeID          uuid.UUID
	Location        string
	Status          SmokeAlarmStatus
	LastTested      *time.Time
	BatteryReplaced *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewSmokeAlarm creates a new SmokeAlarm entity.
func NewSmokeAlarm(
	userID, homeID uuid.UUID,
	location string,
	status SmokeAlarmStatus,
	lastTested, batteryReplaced *time.Time,
) *SmokeAlarm {
	now := time.Now().UTC()
	return &SmokeAlarm{
		ID:              uuid.New(),
		UserID:          userID,
		HomeID:          homeID,
		Location:        location,
		Status:          status,
		LastTested:      lastTested,
		BatteryReplaced: batteryReplaced,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// RepairMaintenance represents a repair or maintenance job done on a home.
type RepairMaintenance struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	HomeID      uuid.UUID
	Description string
	Cost        decimal.Decimal
	Date        time.Time
	Contractor  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRepairMaintenance creates a new RepairMaintenance entity.
func NewRepairMaintenance(
	userID, homeID uuid.UUID,
	description string,
	cost decimal.Decimal,
	date time.Time,
	contractor string,
) *RepairMaintenance {
	now := time.Now().UTC()
	return &RepairMaintenance{
		ID:          uuid.New(),
		UserID:      userID,
		HomeID:      homeID,
		Description: description,
		Cost:        cost,
		Date:        date,
		Contractor:  contractor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UtilityBillType represents the kind of utility a bill covers.
type UtilityBillType string

const (
	UtilityBillTypeElectricity UtilityBillType = "Electricity"
	UtilityBillTypeGas         UtilityBillType = "Gas"
	UtilityBillTypeWater       UtilityBillType = "Water"
	UtilityBillTypeInternet    UtilityBillType = "Internet"
	UtilityBillTypeOther       UtilityBillType = "Other"
)

// ValidUtilityBillType reports whether the type is one of the closed set.
func ValidUtilityBillType(t UtilityBillType) bool {
	switch t {
	case UtilityBillTypeElectricity, UtilityBillTypeGas, UtilityBillTypeWater,
		UtilityBillTypeInternet, UtilityBillTypeOther:
		return true
	}
	return false
}

// UtilityBill represents a utility bill attached to a home.
type UtilityBill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	HomeID    uuid.UUID
	Type      UtilityBillType
	Amount    decimal.Decimal
	DueDate   time.Time
	Paid      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUtilityBill creates a new UtilityBill entity.
func NewUtilityBill(
	userID, homeID uuid.UUID,
	billType UtilityBillType,
	amount decimal.Decimal,
	dueDate time.Time,
	paid bool,
) *UtilityBill {
	now := time.Now().UTC()
	return &UtilityBill{
		ID:        uuid.New(),
		UserID:    userID,
		HomeID:    homeID,
		Type:      billType,
		Amount:    amount,
		DueDate:   dueDate,
		Paid:      paid,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
