package dto

import (
	"time"

	"github.com/lifetrack/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Category    string  `json:"category" binding:"required,oneof='Food & Dining' Transport Entertainment Utilities Health Shopping Education Other"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	HasReceipt  bool    `json:"has_receipt,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Category    *string  `json:"category,omitempty" binding:"omitempty,oneof='Food & Dining' Transport Entertainment Utilities Health Shopping Education Other"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	HasReceipt  *bool    `json:"has_receipt,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	HasReceipt  bool      `json:"has_receipt"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Category:    string(e.Category),
		Amount:      e.Amount.String(),
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		HasReceipt:  e.HasReceipt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a slice of Expense entities to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToExpenseResponse(e))
	}
	return ExpenseListResponse{Expenses: out}
}
