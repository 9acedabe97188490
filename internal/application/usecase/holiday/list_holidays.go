package holiday

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ListHolidaysInput represents the input for listing a user's holidays.
type ListHolidaysInput struct {
	UserID uuid.UUID
}

// ListHolidaysOutput represents the output of listing a user's holidays.
type ListHolidaysOutput struct {
	Holidays []*entity.Holiday
}

// ListHolidaysUseCase handles holiday listing logic.
type ListHolidaysUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewListHolidaysUseCase creates a new ListHolidaysUseCase instance.
func NewListHolidaysUseCase(holidayRepo adapter.HolidayRepository) *ListHolidaysUseCase {
	return &ListHolidaysUseCase{holidayRepo: holidayRepo}
}

// Execute lists all holidays owned by the user.
func (uc *ListHolidaysUseCase) Execute(ctx context.Context, input ListHolidaysInput) (*ListHolidaysOutput, error) {
	holidays, err := uc.holidayRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return &ListHolidaysOutput{Holidays: holidays}, nil
}
