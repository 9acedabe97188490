package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateActivityRequest represents the request body for activity creation.
type CreateActivityRequest struct {
	Type             string `json:"type" binding:"required,oneof=Walking Running Cycling Swimming Gym Sports Other"`
	DurationMinutes  int    `json:"duration_minutes" binding:"required"`
	EnergyKilojoules int    `json:"energy_kilojoules,omitempty"`
	Steps            int    `json:"steps,omitempty"`
	Date             string `json:"date" binding:"required"`
	Notes            string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateActivityRequest represents the request body for activity update.
type UpdateActivityRequest struct {
	Type             *string `json:"type,omitempty" binding:"omitempty,oneof=Walking Running Cycling Swimming Gym Sports Other"`
	DurationMinutes  *int    `json:"duration_minutes,omitempty"`
	EnergyKilojoules *int    `json:"energy_kilojoules,omitempty"`
	Steps            *int    `json:"steps,omitempty"`
	Date             *string `json:"date,omitempty"`
	Notes            *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ActivityResponse represents a single activity in API responses.
type ActivityResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Type             string    `json:"type"`
	DurationMinutes  int       `json:"duration_minutes"`
	EnergyKilojoules int       `json:"energy_kilojoules"`
	Steps            int       `json:"steps"`
	Date             string    `json:"date"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ActivityListResponse represents the response for listing activities.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToActivityResponse converts an Activity entity to an ActivityResponse DTO.
func ToActivityResponse(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:               a.ID.String(),
		UserID:           a.UserID.String(),
		Type:             string(a.Type),
		DurationMinutes:  a.DurationMinutes,
		EnergyKilojoules: a.EnergyKilojoules,
		Steps:            a.Steps,
		Date:             a.Date.Format("2006-01-02"),
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// ToActivityListResponse converts a slice of Activity entities to a list response.
func ToActivityListResponse(activities []*entity.Activity) ActivityListResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ToActivityResponse(a))
	}
	return ActivityListResponse{Activities: out}
}
