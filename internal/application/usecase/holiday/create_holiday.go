// Package holiday contains the use cases for managing holidays and their
// per-day expenses. TotalCost is never accepted from the caller: it is derived
// from the transport, accommodation and insurance components on every write.
package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// CreateHolidayInput represents the input for creating a holiday.
type CreateHolidayInput struct {
	UserID            uuid.UUID
	Description       string
	TravelMode        entity.TravelMode
	DepartureDate     time.Time
	Days              int
	TransportCost     decimal.Decimal
	AccommodationCost decimal.Decimal
	InsuranceCost     decimal.Decimal
}

// CreateHolidayOutput represents the output of creating a holiday.
type CreateHolidayOutput struct {
	Holiday *entity.Holiday
}

// CreateHolidayUseCase handles holiday creation logic.
type CreateHolidayUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewCreateHolidayUseCase creates a new CreateHolidayUseCase instance.
func NewCreateHolidayUseCase(holidayRepo adapter.HolidayRepository) *CreateHolidayUseCase {
	return &CreateHolidayUseCase{holidayRepo: holidayRepo}
}

// Execute validates and persists a new holiday.
func (uc *CreateHolidayUseCase) Execute(ctx context.Context, input CreateHolidayInput) (*CreateHolidayOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingHolidayFields,
			"description is required",
			domainerror.ErrMissingFields,
		)
	}

	if !entity.ValidTravelMode(input.TravelMode) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidTravelMode,
			fmt.Sprintf("invalid travel mode: %s", input.TravelMode),
			domainerror.ErrInvalidEnum,
		)
	}

	if input.Days < 1 {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidHolidayDays,
			"days must be at least 1",
			domainerror.ErrNegativeValue,
		)
	}

	if err := validateCosts(input.TransportCost, input.AccommodationCost, input.InsuranceCost); err != nil {
		return nil, err
	}

	holiday := entity.NewHoliday(
		input.UserID,
		input.Description,
		input.TravelMode,
		input.DepartureDate,
		input.Days,
		input.TransportCost,
		input.AccommodationCost,
		input.InsuranceCost,
	)

	if err := uc.holidayRepo.Create(ctx, holiday); err != nil {
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	return &CreateHolidayOutput{Holiday: holiday}, nil
}

func validateCosts(costs ...decimal.Decimal) error {
	for _, c := range costs {
		if c.IsNegative() {
			return domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHolidayCost,
				"cost components must not be negative",
				domainerror.ErrNegativeValue,
			)
		}
	}
	return nil
}
