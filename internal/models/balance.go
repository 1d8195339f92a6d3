package models

import "github.com/shopspring/decimal"

// MemberTotals is the raw per-member aggregate for a group.
type MemberTotals struct {
	UserID string
	Name   string
	// PaidCents is the sum of amounts of expenses the member paid.
	PaidCents int64
	// OwedCents is the sum of the member's split shares.
	OwedCents int64
}

// Balance is a member's net position in a group.
// Positive: the group owes the member. Negative: the member owes the group.
type Balance struct {
	UserID  string
	Name    string
	Balance decimal.Decimal
}

// Transfer is a suggested payment that moves balances toward zero.
type Transfer struct {
	FromUserID string
	ToUserID   string
	Amount     decimal.Decimal
}
