package keyvalue

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// Serialized forms of the key-value record families. These mirror the gorm
// models of the relational families: the wire shape is pinned here so entity
// changes cannot silently break stored data.

type homeRecord struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	Name           string           `json:"name"`
	Type           string           `json:"type"`
	Ownership      string           `json:"ownership"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	Address        string           `json:"address"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (r homeRecord) toEntity() *entity.Home {
	return &entity.Home{
		ID:             r.ID,
		UserID:         r.UserID,
		Name:           r.Name,
		Type:           entity.HomeType(r.Type),
		Ownership:      entity.OwnershipType(r.Ownership),
		MonthlyPayment: r.MonthlyPayment,
		Address:        r.Address,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func homeFromEntity(h *entity.Home) homeRecord {
	return homeRecord{
		ID:             h.ID,
		UserID:         h.UserID,
		Name:           h.Name,
		Type:           string(h.Type),
		Ownership:      string(h.Ownership),
		MonthlyPayment: h.MonthlyPayment,
		Address:        h.Address,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

type homeInsuranceRecord struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	HomeID       uuid.UUID       `json:"home_id"`
	Provider     string          `json:"provider"`
	PolicyNumber string          `json:"policy_number"`
	Premium      decimal.Decimal `json:"premium"`
	RenewalDate  time.Time       `json:"renewal_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (r homeInsuranceRecord) toEntity() *entity.HomeInsurance {
	return &entity.HomeInsurance{
		ID:           r.ID,
		UserID:       r.UserID,
		HomeID:       r.HomeID,
		Provider:     r.Provider,
		PolicyNumber: r.PolicyNumber,
		Premium:      r.Premium,
		RenewalDate:  r.RenewalDate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func homeInsuranceFromEntity(i *entity.HomeInsurance) homeInsuranceRecord {
	return homeInsuranceRecord{
		ID:           i.ID,
		UserID:       i.UserID,
		HomeID:       i.HomeID,
		Provider:     i.Provider,
		PolicyNumber: i.PolicyNumber,
		Premium:      i.Premium,
		RenewalDate:  i.RenewalDate,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

type smokeAlarmRecord struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	HomeID          uuid.UUID  `json:"home_id"`
	Location        string     `json:"location"`
	Status          string     `json:"status"`
	LastTested      *time.Time `json:"last_tested,omitempty"`
	BatteryReplaced *time.Time `json:"battery_replaced,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (r smokeAlarmRecord) toEntity() *entity.SmokeAlarm {
	return &entity.SmokeAlarm{
		ID:              r.ID,
		UserID:          r.UserID,
		HomeID:          r.HomeID,
		Location:        r.Location,
		Status:          entity.SmokeAlarmStatus(r.Status),
		LastTested:      r.LastTested,
		BatteryReplaced: r.BatteryReplaced,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func smokeAlarmFromEntity(a *entity.SmokeAlarm) smokeAlarmRecord {
	return smokeAlarmRecord{
		ID:              a.ID,
		UserID:          a.UserID,
		HomeID:          a.HomeID,
		Location:        a.Location,
		Status:          string(a.Status),
		LastTested:      a.LastTested,
		BatteryReplaced: a.BatteryReplaced,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type repairMaintenanceRecord struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	HomeID      uuid.UUID       `json:"home_id"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Date        time.Time       `json:"date"`
	Contractor  string          `json:"contractor"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (r repairMaintenanceRecord) toEntity() *entity.RepairMaintenance {
	return &entity.RepairMaintenance{
		ID:          r.ID,
		UserID:      r.UserID,
		HomeID:      r.HomeID,
		Description: r.Description,
		Cost:        r.Cost,
		Date:        r.Date,
		Contractor:  r.Contractor,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func repairMaintenanceFromEntity(m *entity.RepairMaintenance) repairMaintenanceRecord {
	return repairMaintenanceRecord{
		ID:          m.ID,
		UserID:      m.UserID,
		HomeID:      m.HomeID,
		Description: m.Description,
		Cost:        m.Cost,
		Date:        m.Date,
		Contractor:  m.Contractor,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type utilityBillRecord struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	HomeID    uuid.UUID       `json:"home_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"due_date"`
	Paid      bool            `json:"paid"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (r utilityBillRecord) toEntity() *entity.UtilityBill {
	return &entity.UtilityBill{
		ID:        r.ID,
		UserID:    r.UserID,
		HomeID:    r.HomeID,
		Type:      entity.UtilityBillType(r.Type),
		Amount:    r.Amount,
		DueDate:   r.DueDate,
		Paid:      r.Paid,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func utilityBillFromEntity(b *entity.UtilityBill) utilityBillRecord {
	return utilityBillRecord{
		ID:        b.ID,
		UserID:    b.UserID,
		HomeID:    b.HomeID,
		Type:      string(b.Type),
		Amount:    b.Amount,
		DueDate:   b.DueDate,
		Paid:      b.Paid,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type holidayRecord struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	Description       string          `json:"description"`
	TravelMode        string          `json:"travel_mode"`
	DepartureDate     time.Time       `json:"departure_date"`
	Days              int             `json:"days"`
	TransportCost     decimal.Decimal `json:"transport_cost"`
	AccommodationCost decimal.Decimal `json:"accommodation_cost"`
	InsuranceCost     decimal.Decimal `json:"insurance_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (r holidayRecord) toEntity() *entity.Holiday {
	return &entity.Holiday{
		ID:                r.ID,
		UserID:            r.UserID,
		Description:       r.Description,
		TravelMode:        entity.TravelMode(r.TravelMode),
		DepartureDate:     r.DepartureDate,
		Days:              r.Days,
		TransportCost:     r.TransportCost,
		AccommodationCost: r.AccommodationCost,
		InsuranceCost:     r.InsuranceCost,
		TotalCost:         r.TotalCost,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func holidayFromEntity(h *entity.Holiday) holidayRecord {
	return holidayRecord{
		ID:                h.ID,
		UserID:            h.UserID,
		Description:       h.Description,
		TravelMode:        string(h.TravelMode),
		DepartureDate:     h.DepartureDate,
		Days:              h.Days,
		TransportCost:     h.TransportCost,
		AccommodationCost: h.AccommodationCost,
		InsuranceCost:     h.InsuranceCost,
		TotalCost:         h.TotalCost,
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         h.UpdatedAt,
	}
}

type holidayDailyExpenseRecord struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	HolidayID   uuid.UUID       `json:"holiday_id"`
	DayNumber   int             `json:"day_number"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	HasReceipt  bool            `json:"has_receipt"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (r holidayDailyExpenseRecord) toEntity() *entity.HolidayDailyExpense {
	return &entity.HolidayDailyExpense{
		ID:          r.ID,
		UserID:      r.UserID,
		HolidayID:   r.HolidayID,
		DayNumber:   r.DayNumber,
		Type:        entity.DailyExpenseType(r.Type),
		Amount:      r.Amount,
		Description: r.Description,
		HasReceipt:  r.HasReceipt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func holidayDailyExpenseFromEntity(e *entity.HolidayDailyExpense) holidayDailyExpenseRecord {
	return holidayDailyExpenseRecord{
		ID:          e.ID,
		UserID:      e.UserID,
		HolidayID:   e.HolidayID,
		DayNumber:   e.DayNumber,
		Type:        string(e.Type),
		Amount:      e.Amount,
		Description: e.Description,
		HasReceipt:  e.HasReceipt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
