package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
// Every query is scoped by owner; updates and deletes are keyed by id AND
// user id so one user can never touch another's records.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by id, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all expenses for a user, ordered by date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// Update updates an existing expense, scoped to the owning user.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense, scoped to the owning user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
