package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/pkg/api"
	"github.com/harshadbhandure/money-matters/pkg/api/apiconnect"
)

// UserSearcher finds users by email fragment.
type UserSearcher interface {
	SearchUsers(ctx context.Context, fragment string) ([]models.UserSummary, error)
}

// UserService implements the UserService RPC interface.
type UserService struct {
	apiconnect.UnimplementedUserServiceHandler
	sessions Sessions
	search   UserSearcher
	logger   *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(sessions Sessions, search UserSearcher, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{sessions: sessions, search: search, logger: logger}
}

// GetCurrentUser returns the caller's account.
func (s *UserService) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.sessions.ValidateUser(ctx, userID)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.GetCurrentUserResponse{User: toAPIUser(user.Summary())}), nil
}

// SearchUsers finds users whose email contains the given fragment.
func (s *UserService) SearchUsers(ctx context.Context, req *connect.Request[api.SearchUsersRequest]) (*connect.Response[api.SearchUsersResponse], error) {
	if _, err := currentUser(ctx); err != nil {
		return nil, err
	}

	users, err := s.search.SearchUsers(ctx, req.Msg.Email)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	out := make([]*api.User, len(users))
	for i, u := range users {
		out[i] = toAPIUser(u)
	}
	return connect.NewResponse(&api.SearchUsersResponse{Users: out}), nil
}
