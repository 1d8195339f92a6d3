package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/models"
)

// SplitInput is one member's requested share of an expense.
type SplitInput struct {
	UserID string
	Share  decimal.Decimal
}

// splitTolerance is the largest accepted gap between the sum of shares and
// the expense amount.
var splitTolerance = decimal.New(1, -2)

// MaxAmount is the largest accepted expense amount or share.
var MaxAmount = decimal.New(9999999999, -2)

// hasCents reports whether d has at most two decimal places.
func hasCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// ValidateSplits checks an expense amount against its splits and returns the
// splits normalized so that they sum to amount exactly.
//
// A residual within splitTolerance is moved onto the largest share (the first
// one on ties). Shares are never reordered.
func ValidateSplits(amount decimal.Decimal, splits []SplitInput) ([]SplitInput, error) {
	if !amount.IsPositive() {
		return nil, apperr.BadRequest("amount must be greater than zero")
	}
	if !hasCents(amount) {
		return nil, apperr.BadRequest("amount must have at most two decimal places")
	}
	if amount.GreaterThan(MaxAmount) {
		return nil, apperr.BadRequest("amount must not exceed %s", MaxAmount.StringFixed(2))
	}
	if len(splits) == 0 {
		return nil, apperr.BadRequest("at least one split is required")
	}

	seen := make(map[string]bool, len(splits))
	total := decimal.Zero
	largest := 0
	for i, s := range splits {
		if s.UserID == "" {
			return nil, apperr.BadRequest("split %d has no user", i+1)
		}
		if seen[s.UserID] {
			return nil, apperr.BadRequest("user %s appears in more than one split", s.UserID)
		}
		seen[s.UserID] = true

		if s.Share.IsNegative() {
			return nil, apperr.BadRequest("share for user %s must not be negative", s.UserID)
		}
		if !hasCents(s.Share) {
			return nil, apperr.BadRequest("share for user %s must have at most two decimal places", s.UserID)
		}
		if s.Share.GreaterThan(MaxAmount) {
			return nil, apperr.BadRequest("share for user %s must not exceed %s", s.UserID, MaxAmount.StringFixed(2))
		}
		if s.Share.GreaterThan(splits[largest].Share) {
			largest = i
		}
		total = total.Add(s.Share)
	}

	residual := amount.Sub(total)
	if residual.Abs().GreaterThan(splitTolerance) {
		return nil, apperr.BadRequest("total split amount (%s) must equal expense amount (%s)",
			total.StringFixed(2), amount.StringFixed(2))
	}

	normalized := make([]SplitInput, len(splits))
	copy(normalized, splits)
	if !residual.IsZero() {
		adjusted := normalized[largest].Share.Add(residual)
		if adjusted.IsNegative() {
			return nil, apperr.BadRequest("total split amount (%s) must equal expense amount (%s)",
				total.StringFixed(2), amount.StringFixed(2))
		}
		normalized[largest].Share = adjusted
	}
	return normalized, nil
}

// EqualSplit divides amount across userIDs in whole cents. Remainder cents
// go to the earliest users in the list, one each.
func EqualSplit(amount decimal.Decimal, userIDs []string) ([]SplitInput, error) {
	if !amount.IsPositive() || !hasCents(amount) {
		return nil, apperr.BadRequest("amount must be greater than zero with at most two decimal places")
	}
	if amount.GreaterThan(MaxAmount) {
		return nil, apperr.BadRequest("amount must not exceed %s", MaxAmount.StringFixed(2))
	}
	if len(userIDs) == 0 {
		return nil, apperr.BadRequest("must have at least one participant")
	}

	cents := amount.Shift(2).IntPart()
	n := int64(len(userIDs))
	base, remainder := cents/n, cents%n

	splits := make([]SplitInput, len(userIDs))
	for i, id := range userIDs {
		share := base
		if int64(i) < remainder {
			share++
		}
		splits[i] = SplitInput{UserID: id, Share: decimal.New(share, -2)}
	}
	return splits, nil
}

// NetBalances converts per-member totals into balances: paid minus owed.
// Order follows totals.
func NetBalances(totals []models.MemberTotals) []models.Balance {
	balances := make([]models.Balance, len(totals))
	for i, t := range totals {
		balances[i] = models.Balance{
			UserID:  t.UserID,
			Name:    t.Name,
			Balance: decimal.New(t.PaidCents-t.OwedCents, -2),
		}
	}
	return balances
}

// SimplifyDebts returns transfers that bring every balance to zero, matching
// the largest debtor with the largest creditor until both sides are settled.
// Balances must sum to zero.
func SimplifyDebts(balances []models.Balance) []models.Transfer {
	type position struct {
		userID string
		cents  int64
	}

	var creditors, debtors []position
	for _, b := range balances {
		cents := b.Balance.Shift(2).Round(0).IntPart()
		switch {
		case cents > 0:
			creditors = append(creditors, position{b.UserID, cents})
		case cents < 0:
			debtors = append(debtors, position{b.UserID, -cents})
		}
	}

	byAmount := func(p []position) func(i, j int) bool {
		return func(i, j int) bool {
			if p[i].cents != p[j].cents {
				return p[i].cents > p[j].cents
			}
			return p[i].userID < p[j].userID
		}
	}
	sort.Slice(creditors, byAmount(creditors))
	sort.Slice(debtors, byAmount(debtors))

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].cents, creditors[j].cents)
		transfers = append(transfers, models.Transfer{
			FromUserID: debtors[i].userID,
			ToUserID:   creditors[j].userID,
			Amount:     decimal.New(amount, -2),
		})

		debtors[i].cents -= amount
		creditors[j].cents -= amount
		if debtors[i].cents == 0 {
			i++
		}
		if creditors[j].cents == 0 {
			j++
		}
	}
	return transfers
}
