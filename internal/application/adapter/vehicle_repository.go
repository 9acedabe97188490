package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle and vehicle expense
// persistence operations.
type VehicleRepository interface {
	// Create creates a new vehicle in the database.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// FindByID retrieves a vehicle by id, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Vehicle, error)

	// FindByUser retrieves all vehicles for a user, ordered by creation descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error)

	// Update updates an existing vehicle, scoped to the owning user.
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// DeleteWithExpenses removes a vehicle and all its expense records in a
	// single transaction.
	DeleteWithExpenses(ctx context.Context, id, userID uuid.UUID) error

	// CreateExpense creates a new vehicle expense in the database.
	CreateExpense(ctx context.Context, expense *entity.VehicleExpense) error

	// FindExpenseByID retrieves a vehicle expense by id, scoped to the owning user.
	FindExpenseByID(ctx context.Context, id, userID uuid.UUID) (*entity.VehicleExpense, error)

	// FindExpensesByVehicle retrieves all expenses for a vehicle, ordered by
	// date descending.
	FindExpensesByVehicle(ctx context.Context, vehicleID, userID uuid.UUID) ([]*entity.VehicleExpense, error)

	// UpdateExpense updates an existing vehicle expense, scoped to the owning user.
	UpdateExpense(ctx context.Context, expense *entity.VehicleExpense) error

	// DeleteExpense removes a vehicle expense, scoped to the owning user.
	DeleteExpense(ctx context.Context, id, userID uuid.UUID) error
}
