package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// UpdateHolidayInput represents the input for updating a holiday. Nil fields
// are left unchanged. TotalCost is not an input; it is recomputed whenever a
// cost component changes.
type UpdateHolidayInput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Description       *string
	TravelMode        *entity.TravelMode
	DepartureDate     *time.Time
	Days              *int
	TransportCost     *decimal.Decimal
	AccommodationCost *decimal.Decimal
	InsuranceCost     *decimal.Decimal
}

// UpdateHolidayOutput represents the output of updating a holiday.
type UpdateHolidayOutput struct {
	Holiday *entity.Holiday
}

// UpdateHolidayUseCase handles holiday update logic.
type UpdateHolidayUseCase struct {
	holidayRepo adapter.HolidayRepository
}

// NewUpdateHolidayUseCase creates a new UpdateHolidayUseCase instance.
func NewUpdateHolidayUseCase(holidayRepo adapter.HolidayRepository) *UpdateHolidayUseCase {
	return &UpdateHolidayUseCase{holidayRepo: holidayRepo}
}

// Execute merges the provided fields into the stored holiday, recomputes the
// derived total and persists it.
func (uc *UpdateHolidayUseCase) Execute(ctx context.Context, input UpdateHolidayInput) (*UpdateHolidayOutput, error) {
	holiday, err := uc.holidayRepo.FindByID(ctx, input.ID, input.UserID)
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

	if input.Description != nil {
		holiday.Description = *input.Description
	}
	if input.TravelMode != nil {
		if !entity.ValidTravelMode(*input.TravelMode) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidTravelMode,
				fmt.Sprintf("invalid travel mode: %s", *input.TravelMode),
				domainerror.ErrInvalidEnum,
			)
		}
		holiday.TravelMode = *input.TravelMode
	}
	if input.DepartureDate != nil {
		holiday.DepartureDate = *input.DepartureDate
	}
	if input.Days != nil {
		if *input.Days < 1 {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidHolidayDays,
				"days must be at least 1",
				domainerror.ErrNegativeValue,
			)
		}
		holiday.Days = *input.Days
	}

	costChanged := false
	if input.TransportCost != nil {
		if err := validateCosts(*input.TransportCost); err != nil {
			return nil, err
		}
		holiday.TransportCost = *input.TransportCost
		costChanged = true
	}
	if input.AccommodationCost != nil {
		if err := validateCosts(*input.AccommodationCost); err != nil {
			return nil, err
		}
		holiday.AccommodationCost = *input.AccommodationCost
		costChanged = true
	}
	if input.InsuranceCost != nil {
		if err := validateCosts(*input.InsuranceCost); err != nil {
			return nil, err
		}
		holiday.InsuranceCost = *input.InsuranceCost
		costChanged = true
	}
	if costChanged {
		holiday.RecomputeTotalCost()
	}
	holiday.UpdatedAt = time.Now().UTC()

	if err := uc.holidayRepo.Update(ctx, holiday); err != nil {
		return nil, fmt.Errorf("failed to update holiday: %w", err)
	}

	return &UpdateHolidayOutput{Holiday: holiday}, nil
}
