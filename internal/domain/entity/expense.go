// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of a general expense.
type ExpenseCategory string

const (
	ExpenseCategoryFoodDining    ExpenseCategory = "Food & Dining"
	ExpenseCategoryTransport     ExpenseCategory = "Transport"
	ExpenseCategoryEntertainment ExpenseCategory = "Entertainment"
	ExpenseCategoryUtilities     ExpenseCategory = "Utilities"
	ExpenseCategoryHealth        ExpenseCategory = "Health"
	ExpenseCategoryShopping      ExpenseCategory = "Shopping"
	ExpenseCategoryEducation     ExpenseCategory = "Education"
	ExpenseCategoryOther         ExpenseCategory = "Other"
)

// ValidExpenseCategory reports whether the category is one of the closed set.
func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseCategoryFoodDining, ExpenseCategoryTransport,
		ExpenseCategoryEntertainment, ExpenseCategoryUtilities,
		ExpenseCategoryHealth, ExpenseCategoryShopping,
		ExpenseCategoryEducation, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense represents a single everyday expense owned by a user.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    ExpenseCategory
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	HasReceipt  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	category ExpenseCategory,
	amount decimal.Decimal,
	date time.Time,
	description string,
	hasReceipt bool,
) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
		HasReceipt:  hasReceipt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
