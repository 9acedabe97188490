package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// fakeExpenseRepository is an in-memory ExpenseRepository for use case tests.
type fakeExpenseRepository struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepository) Create(_ context.Context, e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return nil, domainerror.ErrRecordNotFound
	}
	return e, nil
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

func (r *fakeExpenseRepository) Update(_ context.Context, e *entity.Expense) error {
	if _, ok := r.expenses[e.ID]; !ok {
		return domainerror.ErrRecordNotFound
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return domainerror.ErrRecordNotFound
	}
	delete(r.expenses, id)
	return nil
}

// failingExpenseRepository simulates a storage outage on reads.
type failingExpenseRepository struct {
	*fakeExpenseRepository
	findErr error
}

func (r *failingExpenseRepository) FindByID(_ context.Context, _, _ uuid.UUID) (*entity.Expense, error) {
	return nil, r.findErr
}

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a valid expense", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		uc := NewCreateExpenseUseCase(repo)

		out, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:      userID,
			Category:    entity.ExpenseCategoryFoodDining,
			Amount:      decimal.NewFromFloat(42.75),
			Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Description: "Groceries",
			HasReceipt:  true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Expense.ID == uuid.Nil {
			t.Error("expected an id to be assigned")
		}
		if !out.Expense.Amount.Equal(decimal.NewFromFloat(42.75)) {
			t.Errorf("amount = %s, want 42.75", out.Expense.Amount)
		}
		if len(repo.expenses) != 1 {
			t.Errorf("stored %d expenses, want 1", len(repo.expenses))
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepository())

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:   userID,
			Category: entity.ExpenseCategory("Gambling"),
			Amount:   decimal.NewFromInt(10),
			Date:     time.Now(),
		})
		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeInvalidExpenseCategory {
			t.Fatalf("expected invalid category error, got %v", err)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepository())

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := uc.Execute(ctx, CreateExpenseInput{
				UserID:   userID,
				Category: entity.ExpenseCategoryTransport,
				Amount:   amount,
				Date:     time.Now(),
			})
			var recErr *domainerror.RecordError
			if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeInvalidExpenseAmount {
				t.Fatalf("amount %s: expected invalid amount error, got %v", amount, err)
			}
		}
	})

	t.Run("rejects a missing date", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(newFakeExpenseRepository())

		_, err := uc.Execute(ctx, CreateExpenseInput{
			UserID:   userID,
			Category: entity.ExpenseCategoryHealth,
			Amount:   decimal.NewFromInt(10),
		})
		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeMissingExpenseFields {
			t.Fatalf("expected missing fields error, got %v", err)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(repo *fakeExpenseRepository) *entity.Expense {
		e := entity.NewExpense(userID, entity.ExpenseCategoryShopping,
			decimal.NewFromFloat(99.99), time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), "", false)
		repo.expenses[e.ID] = e
		return e
	}

	t.Run("merges only the provided fields", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		seeded := seed(repo)
		uc := NewUpdateExpenseUseCase(repo)

		amount := decimal.NewFromFloat(89.99)
		desc := "Discounted"
		out, err := uc.Execute(ctx, UpdateExpenseInput{
			ID:          seeded.ID,
			UserID:      userID,
			Amount:      &amount,
			Description: &desc,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Expense.Amount.Equal(amount) {
			t.Errorf("amount = %s, want 89.99", out.Expense.Amount)
		}
		if out.Expense.Description != "Discounted" {
			t.Errorf("description = %q, want Discounted", out.Expense.Description)
		}
		if out.Expense.Category != entity.ExpenseCategoryShopping {
			t.Errorf("category changed to %q", out.Expense.Category)
		}
	})

	t.Run("returns not found for another user's expense", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		seeded := seed(repo)
		uc := NewUpdateExpenseUseCase(repo)

		desc := "stolen"
		_, err := uc.Execute(ctx, UpdateExpenseInput{
			ID:          seeded.ID,
			UserID:      uuid.New(),
			Description: &desc,
		})
		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeExpenseNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("propagates storage errors instead of reporting not found", func(t *testing.T) {
		repo := &failingExpenseRepository{
			fakeExpenseRepository: newFakeExpenseRepository(),
			findErr:               errors.New("connection refused"),
		}
		uc := NewUpdateExpenseUseCase(repo)

		desc := "unreachable"
		_, err := uc.Execute(ctx, UpdateExpenseInput{
			ID:          uuid.New(),
			UserID:      userID,
			Description: &desc,
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		var recErr *domainerror.RecordError
		if errors.As(err, &recErr) {
			t.Fatalf("storage error surfaced as record error %s", recErr.Code)
		}
		if !errors.Is(err, repo.findErr) {
			t.Errorf("expected the storage error to be wrapped, got %v", err)
		}
	})

	t.Run("validates the new amount", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		seeded := seed(repo)
		uc := NewUpdateExpenseUseCase(repo)

		amount := decimal.NewFromInt(-1)
		_, err := uc.Execute(ctx, UpdateExpenseInput{
			ID:     seeded.ID,
			UserID: userID,
			Amount: &amount,
		})
		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeInvalidExpenseAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes an owned expense", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		e := entity.NewExpense(userID, entity.ExpenseCategoryOther,
			decimal.NewFromInt(5), time.Now(), "", false)
		repo.expenses[e.ID] = e
		uc := NewDeleteExpenseUseCase(repo)

		if err := uc.Execute(ctx, DeleteExpenseInput{ID: e.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.expenses) != 0 {
			t.Errorf("stored %d expenses after delete, want 0", len(repo.expenses))
		}
	})

	t.Run("propagates storage errors instead of reporting not found", func(t *testing.T) {
		repo := &failingExpenseRepository{
			fakeExpenseRepository: newFakeExpenseRepository(),
			findErr:               errors.New("connection refused"),
		}
		uc := NewDeleteExpenseUseCase(repo)

		err := uc.Execute(ctx, DeleteExpenseInput{ID: uuid.New(), UserID: userID})
		var recErr *domainerror.RecordError
		if errors.As(err, &recErr) {
			t.Fatalf("storage error surfaced as record error %s", recErr.Code)
		}
		if !errors.Is(err, repo.findErr) {
			t.Errorf("expected the storage error to be wrapped, got %v", err)
		}
	})

	t.Run("returns not found for a missing expense", func(t *testing.T) {
		uc := NewDeleteExpenseUseCase(newFakeExpenseRepository())

		err := uc.Execute(ctx, DeleteExpenseInput{ID: uuid.New(), UserID: userID})
		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeExpenseNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestListExpenses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns only the caller's expenses", func(t *testing.T) {
		repo := newFakeExpenseRepository()
		mine := entity.NewExpense(userID, entity.ExpenseCategoryTransport,
			decimal.NewFromFloat(3.5), time.Now(), "", false)
		other := entity.NewExpense(uuid.New(), entity.ExpenseCategoryTransport,
			decimal.NewFromInt(8), time.Now(), "", false)
		repo.expenses[mine.ID] = mine
		repo.expenses[other.ID] = other

		uc := NewListExpensesUseCase(repo)
		out, err := uc.Execute(ctx, ListExpensesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Expenses) != 1 {
			t.Fatalf("listed %d expenses, want 1", len(out.Expenses))
		}
		if out.Expenses[0].ID != mine.ID {
			t.Errorf("listed expense %s, want %s", out.Expenses[0].ID, mine.ID)
		}
	})
}
