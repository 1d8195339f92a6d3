// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/harshadbhandure/money-matters/internal/models"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new user. Returns ErrDuplicate if the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdatePasswordHash replaces a user's password hash.
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error

	// SearchUsersByEmail returns up to limit users whose email contains fragment,
	// case-insensitively.
	SearchUsersByEmail(ctx context.Context, fragment string, limit int) ([]*models.User, error)
}

// RefreshTokenStore persists hashed refresh tokens.
type RefreshTokenStore interface {
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// ListRefreshTokensByUser returns the user's stored tokens, newest first.
	ListRefreshTokensByUser(ctx context.Context, userID string) ([]*models.RefreshToken, error)

	// DeleteRefreshToken removes one token and reports whether a row was deleted.
	DeleteRefreshToken(ctx context.Context, id string) (bool, error)

	// DeleteRefreshTokensByUser removes every token of a user.
	DeleteRefreshTokensByUser(ctx context.Context, userID string) (int64, error)

	// DeleteExpiredRefreshTokens removes every token that expired before now.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

// GroupStore persists groups and memberships.
type GroupStore interface {
	// CreateGroup inserts the group and the creator's membership atomically.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup returns the group with its members, or nil, nil when absent.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember returns every group userID belongs to, with members.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// AddGroupMember appends a membership. Returns ErrDuplicate if it exists.
	AddGroupMember(ctx context.Context, groupID, userID string) error

	IsGroupMember(ctx context.Context, groupID, userID string) (bool, error)
}

// ExpenseStore persists expenses and their splits.
type ExpenseStore interface {
	// CreateExpense inserts the expense and all its splits in one transaction.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense returns an expense with names and splits, or nil, nil when absent.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup returns expenses ordered by date then creation time,
	// newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// GroupTotals aggregates paid and owed cents for every current member.
	GroupTotals(ctx context.Context, groupID string) ([]models.MemberTotals, error)
}

// Store is the full persistence surface used by the server.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	UserStore
	RefreshTokenStore
	GroupStore
	ExpenseStore

	// Close releases any resources held by the store.
	Close() error
}
