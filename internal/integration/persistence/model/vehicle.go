package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// VehicleModel represents the vehicles table in the database.
type VehicleModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	Make               string     `gorm:"type:varchar(100);not null"`
	Model              string     `gorm:"type:varchar(100);not null"`
	Year               string     `gorm:"type:varchar(10)"`
	RegistrationNumber string     `gorm:"type:varchar(20);not null"`
	FuelType           string     `gorm:"type:varchar(20);not null"`
	RegistrationDue    *time.Time `gorm:"type:timestamp"`
	InsuranceDue       *time.Time `gorm:"type:timestamp"`
	ServiceDue         *time.Time `gorm:"type:timestamp"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

// TableName returns the table name for the VehicleModel.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToEntity converts a VehicleModel to a domain Vehicle entity.
func (m *VehicleModel) ToEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID:                 m.ID,
		UserID:             m.UserID,
		Make:               m.Make,
		Model:              m.Model,
		Year:               m.Year,
		RegistrationNumber: m.RegistrationNumber,
		FuelType:           entity.FuelType(m.FuelType),
		RegistrationDue:    m.RegistrationDue,
		InsuranceDue:       m.InsuranceDue,
		ServiceDue:         m.ServiceDue,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// VehicleFromEntity creates a VehicleModel from a domain Vehicle entity.
func VehicleFromEntity(vehicle *entity.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:                 vehicle.ID,
		UserID:             vehicle.UserID,
		Make:               vehicle.Make,
		Model:              vehicle.Model,
		Year:               vehicle.Year,
		RegistrationNumber: vehicle.RegistrationNumber,
		FuelType:           string(vehicle.FuelType),
		RegistrationDue:    vehicle.RegistrationDue,
		InsuranceDue:       vehicle.InsuranceDue,
		ServiceDue:         vehicle.ServiceDue,
		CreatedAt:          vehicle.CreatedAt,
		UpdatedAt:          vehicle.UpdatedAt,
	}
}
