package holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteHolidayInput represents the input for deleting a holiday.
type DeleteHolidayInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteHolidayUseCase handles holiday deletion logic, cascading to the
// holiday's daily expenses.
type DeleteHolidayUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewDeleteHolidayUseCase creates a new DeleteHolidayUseCase instance.
func NewDeleteHolidayUseCase(holidayRepo adapter.HolidayRepository) *DeleteHolidayUseCase {
	return &DeleteHolidayUseCase{holidayRepo: holidayRepo}
}

// Execute deletes the holiday and its daily expenses. The daily expenses go
// first so a crash mid-delete leaves a surviving holiday rather than orphans.
func (uc *DeleteHolidayUseCase) Execute(ctx context.Context, input DeleteHolidayInput) error {
	if _, err := uc.holidayRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeHolidayNotFound,
				"holiday not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load holiday: %w", err)
	}

	if err := uc.holidayRepo.DeleteDailyExpensesByHoliday(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete holiday daily expenses: %w", err)
	}

	if err := uc.holidayRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}
