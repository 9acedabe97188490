package holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// GetHolidayCostsInput represents the input for the holiday cost breakdown.
type GetHolidayCostsInput struct {
	UserID    uuid.UUID
	HolidayID uuid.UUID
}

// GetHolidayCostsOutput represents the holiday cost breakdown. BaseCost is the
// derived total of the three booking components, DailyTotal the sum of all
// per-day expenses, and GrandTotal their sum. TotalByDay maps day number to
// that day's spend.
type GetHolidayCostsOutput struct {
	Holiday    *entity.Holiday
	Expenses   []*entity.HolidayDailyExpense
	BaseCost   decimal.Decimal
	DailyTotal decimal.Decimal
	GrandTotal decimal.Decimal
	TotalByDay map[int]decimal.Decimal
}

// GetHolidayCostsUseCase aggregates the full cost picture of one holiday.
type GetHolidayCostsUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewGetHolidayCostsUseCase creates a new GetHolidayCostsUseCase instance.
func NewGetHolidayCostsUseCase(holidayRepo adapter.HolidayRepository) *GetHolidayCostsUseCase {
	return &GetHolidayCostsUseCase{holidayRepo: holidayRepo}
}

// Execute returns the holiday, its daily expenses and the aggregated totals.
func (uc *GetHolidayCostsUseCase) Execute(ctx context.Context, input GetHolidayCostsInput) (*GetHolidayCostsOutput, error) {
	holiday, err := uc.holidayRepo.FindByID(ctx, input.HolidayID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeHolidayNotFound,
				"holiday not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load holiday: %w", err)
	}

	expenses, err := uc.holidayRepo.FindDailyExpensesByHoliday(ctx, input.HolidayID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday daily expenses: %w", err)
	}

	dailyTotal := decimal.Zero
	totalByDay := make(map[int]decimal.Decimal)
	for _, e := range expenses {
		dailyTotal = dailyTotal.Add(e.Amount)
		totalByDay[e.DayNumber] = totalByDay[e.DayNumber].Add(e.Amount)
	}

	return &GetHolidayCostsOutput{
		Holiday:    holiday,
		Expenses:   expenses,
		BaseCost:   holiday.TotalCost,
		DailyTotal: dailyTotal,
		GrandTotal: holiday.TotalCost.Add(dailyTotal),
		TotalByDay: totalByDay,
	}, nil
}
