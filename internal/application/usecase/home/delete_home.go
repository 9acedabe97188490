package home

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// DeleteHomeInput represents the input for home deletion.
type DeleteHomeInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteHomeUseCase handles home deletion. The store enforces the cascade:
// all four child collections are cleared before the home itself goes. The
// backing key-value store has no cross-key transactions, so the children are
// removed first; a crash mid-cascade leaves orphan-free children and a
// surviving parent rather than orphaned children.
type DeleteHomeUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewDeleteHomeUseCase creates a new DeleteHomeUseCase instance.
func NewDeleteHomeUseCase(homeRepo adapter.HomeRepository) *DeleteHomeUseCase {
	return &DeleteHomeUseCase{
		homeRepo: homeRepo,
	}
}

// Execute performs the cascading home deletion.
func (uc *DeleteHomeUseCase) Execute(ctx context.Context, input DeleteHomeInput) error {
	if _, err := uc.homeRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeHomeNotFound,
				"home not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load home: %w", err)
	}

	if err := uc.homeRepo.DeleteInsurancesByHome(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete home insurances: %w", err)
	}
	if err := uc.homeRepo.DeleteSmokeAlarmsByHome(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete smoke alarms: %w", err)
	}
	if err := uc.homeRepo.DeleteRepairsByHome(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete repairs: %w", err)
	}
	if err := uc.homeRepo.DeleteUtilityBillsByHome(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete utility bills: %w", err)
	}

	if err := uc.homeRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete home: %w", err)
	}
	return nil
}
