package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType represents the type of a physical activity.
type ActivityType string

const (
	ActivityTypeWalking  ActivityType = "Walking"
	ActivityTypeRunning  ActivityType = "Running"
	ActivityTypeCycling  ActivityType = "Cycling"
	ActivityTypeSwimming ActivityType = "Swimming"
	ActivityTypeGym      ActivityType = "Gym"
	ActivityTypeSports   ActivityType = "Sports"
	ActivityTypeOther    ActivityType = "Other"
)

// ValidActivityType reports whether the type is one of the closed set.
func ValidActivityType(t ActivityType) bool {
	switch t {
	case ActivityTypeWalking, ActivityTypeRunning, ActivityTypeCycling,
		ActivityTypeSwimming, ActivityTypeGym, ActivityTypeSports,
		ActivityTypeOther:
		return true
	}
	return false
}

// Activity represents a recorded physical activity session.
type Activity struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Type             ActivityType
	DurationMinutes  int
	EnergyKilojoules int
	Steps            int
	Date             time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewActivity creates a new Activity entity.
func NewActivity(
	userID uuid.UUID,
	activityType ActivityType,
	durationMinutes, energyKilojoules, steps int,
	date time.Time,
	notes string,
) *Activity {
	now := time.Now().UTC()
	return &Activity{
		ID:               uuid.New(),
		UserID:           userID,
		Type:             activityType,
		DurationMinutes:  durationMinutes,
		EnergyKilojoules: energyKilojoules,
		Steps:            steps,
		Date:             date,
		Notes:            notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
