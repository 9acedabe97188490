package keyvalue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
)

func TestHolidayRepository_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHolidayRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	holiday := entity.NewHoliday(userID, "Bali trip", entity.TravelModeFlight,
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), 7,
		mustDecimal(t, "500"), mustDecimal(t, "1200"), mustDecimal(t, "80"))

	if err := repo.Create(ctx, holiday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, holiday.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.TotalCost.Equal(mustDecimal(t, "1780")) {
		t.Errorf("expected stored total cost 1780, got %s", got.TotalCost)
	}
	if got.Days != 7 {
		t.Errorf("expected 7 days, got %d", got.Days)
	}

	got.AccommodationCost = mustDecimal(t, "1500")
	got.RecomputeTotalCost()
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := repo.FindByID(ctx, holiday.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.TotalCost.Equal(mustDecimal(t, "2080")) {
		t.Errorf("expected updated total cost 2080, got %s", again.TotalCost)
	}
}

func TestHolidayRepository_DailyExpenses(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHolidayRepository(store)
	ctx := context.Background()
	userID := uuid.New()

	holiday := entity.NewHoliday(userID, "City break", entity.TravelModeTrain,
		time.Now(), 3,
		mustDecimal(t, "150"), mustDecimal(t, "400"), mustDecimal(t, "30"))
	if err := repo.Create(ctx, holiday); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Insert out of day order; listing must come back sorted.
	for _, e := range []struct {
		day    int
		amount string
	}{
		{3, "90.25"},
		{1, "45.50"},
		{1, "12.00"},
	} {
		expense := entity.NewHolidayDailyExpense(userID, holiday.ID, e.day,
			entity.DailyExpenseTypeMeals, mustDecimal(t, e.amount), "", false)
		if err := repo.CreateDailyExpense(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("list by holiday is day ordered", func(t *testing.T) {
		expenses, err := repo.FindDailyExpensesByHoliday(ctx, holiday.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(expenses))
		}
		for i := 1; i < len(expenses); i++ {
			if expenses[i].DayNumber < expenses[i-1].DayNumber {
				t.Errorf("expenses not ordered by day: %d before %d",
					expenses[i-1].DayNumber, expenses[i].DayNumber)
			}
		}
	})

	t.Run("list by day filters", func(t *testing.T) {
		expenses, err := repo.FindDailyExpensesByDay(ctx, holiday.ID, userID, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 2 {
			t.Errorf("expected 2 day-1 expenses, got %d", len(expenses))
		}
	})

	t.Run("cascade delete", func(t *testing.T) {
		if err := repo.DeleteDailyExpensesByHoliday(ctx, holiday.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expenses, err := repo.FindDailyExpensesByHoliday(ctx, holiday.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenses) != 0 {
			t.Errorf("expected no expenses after cascade, got %d", len(expenses))
		}
	})
}

func TestHolidayRepository_DeleteMissing(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewHolidayRepository(store)
	ctx := context.Background()

	if err := repo.Delete(ctx, uuid.New(), uuid.New()); err == nil {
		t.Error("expected error deleting a missing holiday")
	}
	if err := repo.DeleteDailyExpense(ctx, uuid.New(), uuid.New()); err == nil {
		t.Error("expected error deleting a missing daily expense")
	}
}
