package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// ActivityRepository defines the interface for activity persistence operations.
type ActivityRepository interface {
	// Create creates a new activity in the database.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves an activity by id, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error)

	// FindByUser retrieves all activities for a user, ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// Update updates an existing activity, scoped to the owning user.
	Update(ctx context.Context, activity *entity.Activity) error

	// Delete removes an activity, scoped to the owning user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
