// Package ledger records group expenses and computes member balances.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/metrics"
	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/internal/storage"
)

// Membership is the group lookup the ledger depends on.
type Membership interface {
	IsMember(ctx context.Context, userID, groupID string) (bool, error)
	// GetGroup returns NotFound for a missing group and Forbidden when
	// actorID is not a member.
	GetGroup(ctx context.Context, groupID, actorID string) (*models.Group, error)
}

// ExpenseInput is a request to record an expense.
type ExpenseInput struct {
	GroupID     string
	ActorID     string
	PaidByID    string
	Amount      decimal.Decimal
	Description string
	// Date is an optional YYYY-MM-DD date. Empty means today (UTC).
	Date   string
	Splits []SplitInput
}

// Balances is the result of ComputeBalances.
type Balances struct {
	// Balances has one entry per current member, ordered by name.
	Balances []models.Balance
	// Transfers would bring every balance to zero.
	Transfers []models.Transfer
}

// Ledger validates and records expenses and aggregates balances.
type Ledger struct {
	groups   Membership
	expenses storage.ExpenseStore
	now      func() time.Time
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for default expense dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// New creates a Ledger.
func New(groups Membership, expenses storage.ExpenseStore, opts ...Option) *Ledger {
	l := &Ledger{
		groups:   groups,
		expenses: expenses,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordExpense validates in and stores the expense with its splits as one
// unit. The payer's split is marked paid.
//
// Checks run in order: the actor must be a member (Forbidden), the payer must
// be a member (BadRequest), every split user must be a member (BadRequest),
// and the shares must add up to the amount within 0.01 (BadRequest).
func (l *Ledger) RecordExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	isMember, err := l.groups.IsMember(ctx, in.ActorID, in.GroupID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperr.Forbidden("you must be a member of the group to add expenses")
	}

	if in.PaidByID == "" {
		return nil, apperr.BadRequest("payer is required")
	}
	members := map[string]bool{in.ActorID: true}
	checkMember := func(userID string) error {
		if ok, seen := members[userID]; seen {
			if !ok {
				return apperr.BadRequest("user %s is not a member of this group", userID)
			}
			return nil
		}
		ok, err := l.groups.IsMember(ctx, userID, in.GroupID)
		if err != nil {
			return err
		}
		members[userID] = ok
		if !ok {
			return apperr.BadRequest("user %s is not a member of this group", userID)
		}
		return nil
	}
	if err := checkMember(in.PaidByID); err != nil {
		return nil, err
	}
	for _, s := range in.Splits {
		if s.UserID == "" {
			continue
		}
		if err := checkMember(s.UserID); err != nil {
			return nil, err
		}
	}

	splits, err := ValidateSplits(in.Amount, in.Splits)
	if err != nil {
		return nil, err
	}

	date, err := l.expenseDate(in.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		GroupID:     in.GroupID,
		PaidByID:    in.PaidByID,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		CreatedAt:   l.now().UTC(),
		Splits:      make([]models.ExpenseSplit, len(splits)),
	}
	for i, s := range splits {
		expense.Splits[i] = models.ExpenseSplit{
			UserID: s.UserID,
			Share:  s.Share,
			Paid:   s.UserID == in.PaidByID,
		}
	}

	if err := l.expenses.CreateExpense(ctx, expense); err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to record expense: %w", err))
	}
	l.metrics.ExpenseRecorded()
	l.logger.InfoContext(ctx, "Expense recorded",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount", expense.Amount.StringFixed(2),
		"splits", len(expense.Splits),
	)

	stored, err := l.expenses.GetExpense(ctx, expense.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if stored == nil {
		return nil, apperr.Internal(fmt.Errorf("expense %s missing after insert", expense.ID))
	}
	return stored, nil
}

// ListExpenses returns the group's expenses, most recent date first, ties
// broken by creation time.
func (l *Ledger) ListExpenses(ctx context.Context, groupID, actorID string) ([]*models.Expense, error) {
	if _, err := l.groups.GetGroup(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	expenses, err := l.expenses.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return expenses, nil
}

// ComputeBalances returns every current member's balance (paid minus owed)
// and the transfers that would settle them. Balances always sum to zero.
func (l *Ledger) ComputeBalances(ctx context.Context, groupID, actorID string) (*Balances, error) {
	if _, err := l.groups.GetGroup(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	totals, err := l.expenses.GroupTotals(ctx, groupID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	balances := NetBalances(totals)
	return &Balances{
		Balances:  balances,
		Transfers: SimplifyDebts(balances),
	}, nil
}

// SuggestEqualSplit splits amount evenly across the group's members in their
// listed order. Nothing is written.
func (l *Ledger) SuggestEqualSplit(ctx context.Context, groupID, actorID string, amount decimal.Decimal) ([]SplitInput, error) {
	group, err := l.groups.GetGroup(ctx, groupID, actorID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(group.Members))
	for i, m := range group.Members {
		ids[i] = m.ID
	}
	return EqualSplit(amount, ids)
}

func (l *Ledger) expenseDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return l.now().UTC().Format(models.DateLayout), nil
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "", apperr.BadRequest("date must be in YYYY-MM-DD format")
	}
	return date, nil
}
