package keyvalue

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// Key prefixes of the holiday record family.
const (
	holidaysPrefix      = "holidays"
	dailyExpensesPrefix = "holiday_daily_expenses"
)

// holidayRepository implements adapter.HolidayRepository on the key-value store.
type holidayRepository struct {
	holidays *collection[holidayRecord]
	expenses *collection[holidayDailyExpenseRecord]
}

// NewHolidayRepository creates a new holiday repository instance.
func NewHolidayRepository(store adapter.KeyValueStore) adapter.HolidayRepository {
	return &holidayRepository{
		holidays: newCollection[holidayRecord](store, holidaysPrefix),
		expenses: newCollection[holidayDailyExpenseRecord](store, dailyExpensesPrefix),
	}
}

// Create appends a holiday to the owner's collection.
func (r *holidayRepository) Create(ctx context.Context, holiday *entity.Holiday) error {
	return appendItem(ctx, r.holidays, holiday.UserID, holidayFromEntity(holiday))
}

// FindByID retrieves a holiday by id, scoped to the owning user.
func (r *holidayRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Holiday, error) {
	records, err := r.holidays.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toEntity(), nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

// FindByUser retrieves all holidays for a user.
func (r *holidayRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Holiday, error) {
	records, err := r.holidays.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	holidays := make([]*entity.Holiday, len(records))
	for i, rec := range records {
		holidays[i] = rec.toEntity()
	}
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].DepartureDate.After(holidays[j].DepartureDate)
	})
	return holidays, nil
}

// Update replaces an existing holiday in the owner's collection.
func (r *holidayRepository) Update(ctx context.Context, holiday *entity.Holiday) error {
	return replaceItem(ctx, r.holidays, holiday.UserID, holiday.ID, holidayRecordID, holidayFromEntity(holiday))
}

// Delete removes a holiday from the owner's collection.
func (r *holidayRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return removeItem(ctx, r.holidays, userID, id, holidayRecordID)
}

// CreateDailyExpense appends a daily expense to the owner's collection.
func (r *holidayRepository) CreateDailyExpense(ctx context.Context, expense *entity.HolidayDailyExpense) error {
	return appendItem(ctx, r.expenses, expense.UserID, holidayDailyExpenseFromEntity(expense))
}

// FindDailyExpenseByID retrieves a daily expense by id, scoped to the owning user.
func (r *holidayRepository) FindDailyExpenseByID(ctx context.Context, id, userID uuid.UUID) (*entity.HolidayDailyExpense, error) {
	records, err := r.expenses.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toEntity(), nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

// FindDailyExpensesByHoliday retrieves all daily expenses for a holiday,
// ordered by day number ascending.
func (r *holidayRepository) FindDailyExpensesByHoliday(ctx context.Context, holidayID, userID uuid.UUID) ([]*entity.HolidayDailyExpense, error) {
	records, err := r.expenses.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []*entity.HolidayDailyExpense
	for _, rec := range records {
		if rec.HolidayID == holidayID {
			out = append(out, rec.toEntity())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DayNumber < out[j].DayNumber
	})
	return out, nil
}

// FindDailyExpensesByDay retrieves the daily expenses for one (holiday, day) pair.
func (r *holidayRepository) FindDailyExpensesByDay(ctx context.Context, holidayID, userID uuid.UUID, dayNumber int) ([]*entity.HolidayDailyExpense, error) {
	records, err := r.expenses.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []*entity.HolidayDailyExpense
	for _, rec := range records {
		if rec.HolidayID == holidayID && rec.DayNumber == dayNumber {
			out = append(out, rec.toEntity())
		}
	}
	return out, nil
}

// UpdateDailyExpense replaces an existing daily expense.
func (r *holidayRepository) UpdateDailyExpense(ctx context.Context, expense *entity.HolidayDailyExpense) error {
	return replaceItem(ctx, r.expenses, expense.UserID, expense.ID, dailyExpenseRecordID, holidayDailyExpenseFromEntity(expense))
}

// DeleteDailyExpense removes a daily expense.
func (r *holidayRepository) DeleteDailyExpense(ctx context.Context, id, userID uuid.UUID) error {
	return removeItem(ctx, r.expenses, userID, id, dailyExpenseRecordID)
}

// DeleteDailyExpensesByHoliday removes every daily expense attached to a holiday.
func (r *holidayRepository) DeleteDailyExpensesByHoliday(ctx context.Context, holidayID, userID uuid.UUID) error {
	return removeWhere(ctx, r.expenses, userID, func(rec holidayDailyExpenseRecord) bool {
		return rec.HolidayID == holidayID
	})
}

func holidayRecordID(r holidayRecord) uuid.UUID                  { return r.ID }
func dailyExpenseRecordID(r holidayDailyExpenseRecord) uuid.UUID { return r.ID }
