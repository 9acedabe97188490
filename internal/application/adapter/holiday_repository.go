package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// HolidayRepository defines the interface for holiday persistence operations,
// including the per-day expense child collection.
type HolidayRepository interface {
	// Holidays

	Create(ctx context.Context, holiday *entity.Holiday) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Holiday, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Holiday, error)
	Update(ctx context.Context, holiday *entity.Holiday) error
	// Delete removes a holiday. Cascading the daily expenses is the caller's
	// responsibility.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// Daily expenses

	CreateDailyExpense(ctx context.Context, expense *entity.HolidayDailyExpense) error
	FindDailyExpenseByID(ctx context.Context, id, userID uuid.UUID) (*entity.HolidayDailyExpense, error)
	// FindDailyExpensesByHoliday returns all daily expenses for a holiday,
	// ordered by day number ascending.
	FindDailyExpensesByHoliday(ctx context.Context, holidayID, userID uuid.UUID) ([]*entity.HolidayDailyExpense, error)
	// FindDailyExpensesByDay returns the daily expenses for one (holiday, day) pair.
	FindDailyExpensesByDay(ctx context.Context, holidayID, userID uuid.UUID, dayNumber int) ([]*entity.HolidayDailyExpense, error)
	UpdateDailyExpense(ctx context.Context, expense *entity.HolidayDailyExpense) error
	DeleteDailyExpense(ctx context.Context, id, userID uuid.UUID) error
	DeleteDailyExpensesByHoliday(ctx context.Context, holidayID, userID uuid.UUID) error
}
