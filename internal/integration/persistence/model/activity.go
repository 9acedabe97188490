package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// ActivityModel represents the activities table in the database.
type ActivityModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Type             string    `gorm:"type:varchar(50);not null;index"`
	DurationMinutes  int       `gorm:"not null"`
	EnergyKilojoules int       `gorm:"not null"`
	Steps            int       `gorm:"not null"`
	Date             time.Time `gorm:"not null;index"`
	Notes            string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts an ActivityModel to a domain Activity entity.
func (m *ActivityModel) ToEntity() *entity.Activity {
	return &entity.Activity{
		ID:               m.ID,
		UserID:           m.UserID,
		Type:             entity.ActivityType(m.Type),
		DurationMinutes:  m.DurationMinutes,
		EnergyKilojoules: m.EnergyKilojoules,
		Steps:            m.Steps,
		Date:             m.Date,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ActivityFromEntity creates an ActivityModel from a domain Activity entity.
func ActivityFromEntity(activity *entity.Activity) *ActivityModel {
	return &ActivityModel{
		ID:               activity.ID,
		UserID:           activity.UserID,
		Type:             string(activity.Type),
		DurationMinutes:  activity.DurationMinutes,
		EnergyKilojoules: activity.EnergyKilojoules,
		Steps:            activity.Steps,
		Date:             activity.Date,
		Notes:            activity.Notes,
		CreatedAt:        activity.CreatedAt,
		UpdatedAt:        activity.UpdatedAt,
	}
}
