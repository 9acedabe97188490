package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
)

type fakeExpenseRepository struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepository) Create(_ context.Context, e *entity.Expense) error {
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *fakeExpenseRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeExpenseRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepository) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (r *fakeExpenseRepository) Delete(_ context.Context, _, _ uuid.UUID) error    { return nil }

type fakeActivityRepository struct {
	activities []*entity.Activity
}

func (r *fakeActivityRepository) Create(_ context.Context, a *entity.Activity) error {
	r.activities = append(r.activities, a)
	return nil
}

func (r *fakeActivityRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Activity, error) {
	for _, a := range r.activities {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeActivityRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range r.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepository) Update(_ context.Context, _ *entity.Activity) error { return nil }
func (r *fakeActivityRepository) Delete(_ context.Context, _, _ uuid.UUID) error     { return nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func expenseAt(userID uuid.UUID, amount string, date time.Time) *entity.Expense {
	return entity.NewExpense(userID, entity.ExpenseCategoryFoodDining, dec(amount), date, "", false)
}

func TestPeriodsAt(t *testing.T) {
	// Wednesday 2026-01-14 15:30 local.
	now := time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC)
	today, week, month, year := PeriodsAt(now)

	t.Run("today starts at local midnight", func(t *testing.T) {
		want := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
		if !today.Start.Equal(want) {
			t.Errorf("expected today start %v, got %v", want, today.Start)
		}
	})

	t.Run("week starts on the most recent Sunday", func(t *testing.T) {
		want := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
		if !week.Start.Equal(want) {
			t.Errorf("expected week start %v, got %v", want, week.Start)
		}
	})

	t.Run("week on a Sunday starts that same day", func(t *testing.T) {
		sunday := time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC)
		_, w, _, _ := PeriodsAt(sunday)
		want := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
		if !w.Start.Equal(want) {
			t.Errorf("expected week start %v, got %v", want, w.Start)
		}
	})

	t.Run("month and year start at their first instants", func(t *testing.T) {
		if !month.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected month start %v", month.Start)
		}
		if !year.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected year start %v", year.Start)
		}
	})

	t.Run("week ends at the reference instant", func(t *testing.T) {
		if !week.End.Equal(now) {
			t.Errorf("expected week end %v, got %v", now, week.End)
		}
	})

	t.Run("today, month, and year span their full calendar windows", func(t *testing.T) {
		if !today.Contains(time.Date(2026, 1, 14, 23, 59, 59, 0, time.UTC)) {
			t.Error("expected the whole calendar day inside today")
		}
		if !month.Contains(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)) {
			t.Error("expected the last day of January inside month")
		}
		if month.Contains(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected February to be outside month")
		}
		if !year.Contains(time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)) {
			t.Error("expected the last day of the year inside year")
		}
		if year.Contains(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected the next year to be outside year")
		}
	})
}

func TestPeriod_Contains(t *testing.T) {
	now := time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC)
	today, _, _, _ := PeriodsAt(now)

	t.Run("includes midnight itself", func(t *testing.T) {
		if !today.Contains(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected midnight to be inside today")
		}
	})

	t.Run("excludes the previous day's last second", func(t *testing.T) {
		if today.Contains(time.Date(2026, 1, 13, 23, 59, 59, 0, time.UTC)) {
			t.Error("expected 23:59:59 of the previous day to be outside today")
		}
	})

	t.Run("includes same-day instants after the reference", func(t *testing.T) {
		if !today.Contains(now.Add(time.Minute)) {
			t.Error("expected a later same-day instant to be inside today")
		}
	})

	t.Run("excludes the next day's first instant", func(t *testing.T) {
		if today.Contains(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected the next midnight to be outside today")
		}
	})
}

func TestGetSummaryUseCase_Buckets(t *testing.T) {
	userID := uuid.New()
	otherUser := uuid.New()
	// Wednesday 2026-01-14.
	now := time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC)

	expenseRepo := &fakeExpenseRepository{expenses: []*entity.Expense{
		expenseAt(userID, "10.00", time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)),   // today
		expenseAt(userID, "20.00", time.Date(2026, 1, 12, 12, 0, 0, 0, time.UTC)),  // this week
		expenseAt(userID, "40.00", time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC)),   // this month only
		expenseAt(userID, "80.00", time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC)), // last year
		expenseAt(otherUser, "999.00", time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)),
	}}

	activityRepo := &fakeActivityRepository{activities: []*entity.Activity{
		entity.NewActivity(userID, entity.ActivityTypeRunning, 30, 1200, 4000,
			time.Date(2026, 1, 14, 7, 0, 0, 0, time.UTC), ""),
		entity.NewActivity(userID, entity.ActivityTypeWalking, 60, 800, 7000,
			time.Date(2026, 1, 11, 8, 0, 0, 0, time.UTC), ""),
	}}

	uc := NewGetSummaryUseCase(expenseRepo, activityRepo)
	out, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Expenses.Today.Equal(dec("10.00")) {
		t.Errorf("expected today 10.00, got %s", out.Expenses.Today)
	}
	if !out.Expenses.ThisWeek.Equal(dec("30.00")) {
		t.Errorf("expected this week 30.00, got %s", out.Expenses.ThisWeek)
	}
	if !out.Expenses.ThisMonth.Equal(dec("70.00")) {
		t.Errorf("expected this month 70.00, got %s", out.Expenses.ThisMonth)
	}
	if !out.Expenses.ThisYear.Equal(dec("70.00")) {
		t.Errorf("expected this year 70.00, got %s", out.Expenses.ThisYear)
	}

	if out.Activities.Today.DurationMinutes != 30 {
		t.Errorf("expected today duration 30, got %d", out.Activities.Today.DurationMinutes)
	}
	if out.Activities.ThisWeek.Steps != 11000 {
		t.Errorf("expected this week steps 11000, got %d", out.Activities.ThisWeek.Steps)
	}
	if out.Activities.ThisMonth.EnergyKilojoules != 2000 {
		t.Errorf("expected this month energy 2000, got %d", out.Activities.ThisMonth.EnergyKilojoules)
	}
}

func TestGetSummaryUseCase_FutureDatedRecords(t *testing.T) {
	userID := uuid.New()
	// Wednesday 2026-01-14; the expense is dated the following week.
	now := time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC)

	expenseRepo := &fakeExpenseRepository{expenses: []*entity.Expense{
		expenseAt(userID, "100.00", time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)),
	}}
	activityRepo := &fakeActivityRepository{}

	uc := NewGetSummaryUseCase(expenseRepo, activityRepo)
	out, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Expenses.Today.IsZero() {
		t.Errorf("expected today 0, got %s", out.Expenses.Today)
	}
	if !out.Expenses.ThisWeek.IsZero() {
		t.Errorf("expected this week 0, got %s", out.Expenses.ThisWeek)
	}
	if !out.Expenses.ThisMonth.Equal(dec("100.00")) {
		t.Errorf("expected this month 100.00, got %s", out.Expenses.ThisMonth)
	}
	if !out.Expenses.ThisYear.Equal(dec("100.00")) {
		t.Errorf("expected this year 100.00, got %s", out.Expenses.ThisYear)
	}
}
