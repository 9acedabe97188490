package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
)

// ExpenseSummary holds the spend totals for the four dashboard windows.
type ExpenseSummary struct {
	Today     decimal.Decimal
	ThisWeek  decimal.Decimal
	ThisMonth decimal.Decimal
	ThisYear  decimal.Decimal
}

// ActivitySummary holds the activity totals for the four dashboard windows.
type ActivitySummary struct {
	Today     ActivityTotals
	ThisWeek  ActivityTotals
	ThisMonth ActivityTotals
	ThisYear  ActivityTotals
}

// ActivityTotals accumulates the three activity gauges over one window.
type ActivityTotals struct {
	DurationMinutes  int
	EnergyKilojoules int
	Steps            int
}

// GetSummaryInput represents the input for the dashboard summary. Now defaults
// to the current instant when zero; tests pin it.
type GetSummaryInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetSummaryOutput represents the aggregated dashboard summary.
type GetSummaryOutput struct {
	Expenses   ExpenseSummary
	Activities ActivitySummary
}

// GetSummaryUseCase aggregates a user's expenses and activities into the
// dashboard windows.
type GetSummaryUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	activityRepo adapter.ActivityRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	activityRepo adapter.ActivityRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo:  expenseRepo,
		activityRepo: activityRepo,
	}
}

// Execute loads the user's records and buckets them into the four windows.
// The calendar windows count future-dated records inside their span; the week
// window stops at the reference instant.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	today, week, month, year := PeriodsAt(now)

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for summary: %w", err)
	}

	activities, err := uc.activityRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities for summary: %w", err)
	}

	out := &GetSummaryOutput{
		Expenses: ExpenseSummary{
			Today:     decimal.Zero,
			ThisWeek:  decimal.Zero,
			ThisMonth: decimal.Zero,
			ThisYear:  decimal.Zero,
		},
	}

	for _, e := range expenses {
		if today.Contains(e.Date) {
			out.Expenses.Today = out.Expenses.Today.Add(e.Amount)
		}
		if week.Contains(e.Date) {
			out.Expenses.ThisWeek = out.Expenses.ThisWeek.Add(e.Amount)
		}
		if month.Contains(e.Date) {
			out.Expenses.ThisMonth = out.Expenses.ThisMonth.Add(e.Amount)
		}
		if year.Contains(e.Date) {
			out.Expenses.ThisYear = out.Expenses.ThisYear.Add(e.Amount)
		}
	}

	for _, a := range activities {
		if today.Contains(a.Date) {
			out.Activities.Today.add(a.DurationMinutes, a.EnergyKilojoules, a.Steps)
		}
		if week.Contains(a.Date) {
			out.Activities.ThisWeek.add(a.DurationMinutes, a.EnergyKilojoules, a.Steps)
		}
		if month.Contains(a.Date) {
			out.Activities.ThisMonth.add(a.DurationMinutes, a.EnergyKilojoules, a.Steps)
		}
		if year.Contains(a.Date) {
			out.Activities.ThisYear.add(a.DurationMinutes, a.EnergyKilojoules, a.Steps)
		}
	}

	return out, nil
}

func (t *ActivityTotals) add(duration, energy, steps int) {
	t.DurationMinutes += duration
	t.EnergyKilojoules += energy
	t.Steps += steps
}
