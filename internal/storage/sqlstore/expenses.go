package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshadbhandure/money-matters/internal/models"
)

// CreateExpense persists an expense and its splits atomically.
// Either every row is written or none is.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate IDs if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := s.exec(ctx, tx,
			`INSERT INTO expenses (id, group_id, paid_by_id, amount_cents, description, expense_date, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			expense.ID, expense.GroupID, expense.PaidByID, toCents(expense.Amount),
			expense.Description, expense.Date, toMillis(expense.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		for i := range expense.Splits {
			split := &expense.Splits[i]
			if split.ID == "" {
				split.ID = uuid.New().String()
			}
			split.ExpenseID = expense.ID

			_, err = s.exec(ctx, tx,
				`INSERT INTO expense_splits (id, expense_id, user_id, share_cents, paid) VALUES (?, ?, ?, ?, ?)`,
				split.ID, split.ExpenseID, split.UserID, toCents(split.Share), split.Paid,
			)
			if err != nil {
				return fmt.Errorf("failed to insert expense split: %w", err)
			}
		}
		return nil
	})
}

const expenseSelect = `
	SELECT e.id, e.group_id, e.paid_by_id, u.name, e.amount_cents, e.description, e.expense_date, e.created_at
	FROM expenses e
	JOIN users u ON u.id = e.paid_by_id`

// GetExpense retrieves an expense with its splits.
func (s *Store) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expenses, err := s.listExpenses(ctx, expenseSelect+` WHERE e.id = ?`, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, nil
	}
	return expenses[0], nil
}

// ListExpensesByGroup retrieves all expenses of a group, most recent first.
func (s *Store) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		expenseSelect+` WHERE e.group_id = ? ORDER BY e.expense_date DESC, e.created_at DESC, e.id DESC`,
		groupID,
	)
}

func (s *Store) listExpenses(ctx context.Context, query string, args ...any) ([]*models.Expense, error) {
	rows, err := s.query(ctx, s.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense := &models.Expense{}
		var amountCents, createdAt int64
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.PaidByID, &expense.PaidByName,
			&amountCents, &expense.Description, &expense.Date, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = fromCents(amountCents)
		expense.CreatedAt = fromMillis(createdAt)
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	if len(expenses) == 0 {
		return expenses, nil
	}

	ids := make([]any, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}

	splitRows, err := s.query(ctx, s.db,
		`SELECT sp.id, sp.expense_id, sp.user_id, u.name, sp.share_cents, sp.paid
		 FROM expense_splits sp
		 JOIN users u ON u.id = sp.user_id
		 WHERE sp.expense_id IN (`+placeholders(len(ids))+`)
		 ORDER BY u.name, u.id`,
		ids...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var split models.ExpenseSplit
		var shareCents int64
		if err := splitRows.Scan(&split.ID, &split.ExpenseID, &split.UserID, &split.UserName,
			&shareCents, &split.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan expense split: %w", err)
		}
		split.Share = fromCents(shareCents)
		if expense, ok := byID[split.ExpenseID]; ok {
			expense.Splits = append(expense.Splits, split)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense splits: %w", err)
	}

	return expenses, nil
}

// GroupTotals returns, for every current member of the group, the total the
// member paid and the total of the member's shares, in cents.
// Members with no expenses are included with zero totals.
func (s *Store) GroupTotals(ctx context.Context, groupID string) ([]models.MemberTotals, error) {
	rows, err := s.query(ctx, s.db,
		`SELECT u.id, u.name,
		   CAST(COALESCE((SELECT SUM(e.amount_cents) FROM expenses e
		                  WHERE e.group_id = gm.group_id AND e.paid_by_id = u.id), 0) AS BIGINT),
		   CAST(COALESCE((SELECT SUM(sp.share_cents) FROM expense_splits sp
		                  JOIN expenses e ON e.id = sp.expense_id
		                  WHERE e.group_id = gm.group_id AND sp.user_id = u.id), 0) AS BIGINT)
		 FROM group_members gm
		 JOIN users u ON u.id = gm.user_id
		 WHERE gm.group_id = ?
		 ORDER BY u.name, u.id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate group totals: %w", err)
	}
	defer rows.Close()

	var totals []models.MemberTotals
	for rows.Next() {
		var t models.MemberTotals
		if err := rows.Scan(&t.UserID, &t.Name, &t.PaidCents, &t.OwedCents); err != nil {
			return nil, fmt.Errorf("failed to scan group totals: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group totals: %w", err)
	}

	return totals, nil
}

func toCents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
