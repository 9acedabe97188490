package home

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ListHomesInput represents the input for listing homes.
type ListHomesInput struct {
	UserID uuid.UUID
}

// ListHomesOutput represents the output of listing homes.
type ListHomesOutput struct {
	Homes []*entity.Home
}

// ListHomesUseCase handles home listing logic.
type ListHomesUseCase struct {
	homeRepo adapter.HomeRepository
}

// NewListHomesUseCase creates a new ListHomesUseCase instance.
func NewListHomesUseCase(homeRepo adapter.HomeRepository) *ListHomesUseCase {
	return &ListHomesUseCase{
		homeRepo: homeRepo,
	}
}

// Execute retrieves all homes for the user.
func (uc *ListHomesUseCase) Execute(ctx context.Context, input ListHomesInput) (*ListHomesOutput, error) {
	homes, err := uc.homeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list homes: %w", err)
	}
	return &ListHomesOutput{Homes: homes}, nil
}
