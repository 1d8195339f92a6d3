package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the format of Expense.Date.
const DateLayout = "2006-01-02"

// Expense is an amount one group member paid on behalf of the group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// PaidByID is the member who paid.
	PaidByID string

	// PaidByName is the payer's display name. Populated on reads.
	PaidByName string

	// Amount is the positive total, two decimal places.
	Amount decimal.Decimal

	Description string

	// Date is the calendar date of the expense in DateLayout form.
	Date string

	// CreatedAt is when the expense was recorded.
	CreatedAt time.Time

	// Splits sum to Amount exactly.
	Splits []ExpenseSplit
}

// ExpenseSplit is the portion of an expense attributed to one member.
type ExpenseSplit struct {
	ID        string
	ExpenseID string
	UserID    string

	// UserName is the member's display name. Populated on reads.
	UserName string

	// Share is non-negative, two decimal places.
	Share decimal.Decimal

	// Paid is true iff UserID is the expense payer. It marks the payer's own
	// share; it is not a settlement state.
	Paid bool
}
