package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// VehicleExpenseModel represents the vehicle_expenses table in the database.
type VehicleExpenseModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	VehicleID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type        string           `gorm:"type:varchar(20);not null;index"`
	Amount      decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Date        time.Time        `gorm:"not null;index"`
	Litres      *decimal.Decimal `gorm:"type:decimal(10,3)"`
	Odometer    *int             `gorm:"type:integer"`
	Provider    string           `gorm:"type:varchar(100)"`
	Description string           `gorm:"type:varchar(255)"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID;references:ID"`
}

// TableName returns the table name for the VehicleExpenseModel.
func (VehicleExpenseModel) TableName() string {
	return "vehicle_expenses"
}

// ToEntity converts a VehicleExpenseModel to a domain VehicleExpense entity.
func (m *VehicleExpenseModel) ToEntity() *entity.VehicleExpense {
	return &entity.VehicleExpense{
		ID:          m.ID,
		UserID:      m.UserID,
		VehicleID:   m.VehicleID,
		Type:        entity.VehicleExpenseType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date,
		Litres:      m.Litres,
		Odometer:    m.Odometer,
		Provider:    m.Provider,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// VehicleExpenseFromEntity creates a VehicleExpenseModel from a domain VehicleExpense entity.
func VehicleExpenseFromEntity(expense *entity.VehicleExpense) *VehicleExpenseModel {
	return &VehicleExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		VehicleID:   expense.VehicleID,
		Type:        string(expense.Type),
		Amount:      expense.Amount,
		Date:        expense.Date,
		Litres:      expense.Litres,
		Odometer:    expense.Odometer,
		Provider:    expense.Provider,
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
