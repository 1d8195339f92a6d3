package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/ledger"
	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/pkg/api"
	"github.com/harshadbhandure/money-matters/pkg/api/apiconnect"
)

// Ledger records expenses and reports balances.
type Ledger interface {
	RecordExpense(ctx context.Context, in ledger.ExpenseInput) (*models.Expense, error)
	ListExpenses(ctx context.Context, groupID, actorID string) ([]*models.Expense, error)
	ComputeBalances(ctx context.Context, groupID, actorID string) (*ledger.Balances, error)
	SuggestEqualSplit(ctx context.Context, groupID, actorID string, amount decimal.Decimal) ([]ledger.SplitInput, error)
}

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	ledger Ledger
	logger *slog.Logger
}

// NewExpenseService creates a new ExpenseService backed by l.
func NewExpenseService(l Ledger, logger *slog.Logger) *ExpenseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{ledger: l, logger: logger}
}

// CreateExpense records an expense paid by one member and split across members.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	splits := make([]ledger.SplitInput, 0, len(req.Msg.Splits))
	for i, sp := range req.Msg.Splits {
		if sp == nil {
			return nil, toConnectError(ctx, s.logger, apperr.BadRequest("split %d is empty", i+1))
		}
		splits = append(splits, ledger.SplitInput{UserID: sp.UserId, Share: money(sp.Share)})
	}

	expense, err := s.ledger.RecordExpense(ctx, ledger.ExpenseInput{
		GroupID:     req.Msg.GroupId,
		ActorID:     userID,
		PaidByID:    req.Msg.PaidById,
		Amount:      money(req.Msg.Amount),
		Description: req.Msg.Description,
		Date:        req.Msg.Date,
		Splits:      splits,
	})
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.CreateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses returns a group's expenses, most recent first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ledger.ListExpenses(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// GetBalances returns each member's net balance and suggested transfers.
func (s *ExpenseService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.ledger.ComputeBalances(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	balances := make([]*api.Balance, len(result.Balances))
	for i, b := range result.Balances {
		balances[i] = &api.Balance{UserId: b.UserID, Name: b.Name, Balance: wireMoney(b.Balance)}
	}
	transfers := make([]*api.Transfer, len(result.Transfers))
	for i, t := range result.Transfers {
		transfers[i] = &api.Transfer{FromUserId: t.FromUserID, ToUserId: t.ToUserID, Amount: wireMoney(t.Amount)}
	}

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances:  balances,
		Transfers: transfers,
	}), nil
}

// SuggestEqualSplit divides an amount evenly across the group's members.
func (s *ExpenseService) SuggestEqualSplit(ctx context.Context, req *connect.Request[api.SuggestEqualSplitRequest]) (*connect.Response[api.SuggestEqualSplitResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	splits, err := s.ledger.SuggestEqualSplit(ctx, req.Msg.GroupId, userID, money(req.Msg.Amount))
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.SuggestEqualSplitResponse{Splits: toAPISplits(splits)}), nil
}
