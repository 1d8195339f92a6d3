package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/harshadbhandure/money-matters/internal/auth"
	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/pkg/api"
	"github.com/harshadbhandure/money-matters/pkg/api/apiconnect"
)

// Sessions is the session lifecycle the auth and user services expose.
type Sessions interface {
	Register(ctx context.Context, email, password, name string) (*auth.AuthBundle, error)
	Login(ctx context.Context, email, password string) (*auth.AuthBundle, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.AuthBundle, error)
	Logout(ctx context.Context, userID, refreshToken string) error
	LogoutAll(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ValidateUser(ctx context.Context, userID string) (*models.User, error)
}

var _ Sessions = (*auth.SessionManager)(nil)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	apiconnect.UnimplementedAuthServiceHandler
	sessions Sessions
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(sessions Sessions, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates a new user account and signs it in.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	s.logger.InfoContext(ctx, "Register request", "email", auth.NormalizeEmail(req.Msg.Email))

	bundle, err := s.sessions.Register(ctx, req.Msg.Email, req.Msg.Password, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.RegisterResponse{Auth: toAPIAuthBundle(bundle)}), nil
}

// Login authenticates a user and returns a new token pair.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	bundle, err := s.sessions.Login(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.WarnContext(ctx, "Login failed", "email", auth.NormalizeEmail(req.Msg.Email))
		return nil, toConnectError(ctx, s.logger, err)
	}

	s.logger.InfoContext(ctx, "User logged in", "user_id", bundle.User.ID)
	return connect.NewResponse(&api.LoginResponse{Auth: toAPIAuthBundle(bundle)}), nil
}

// Refresh exchanges a refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, req *connect.Request[api.RefreshRequest]) (*connect.Response[api.RefreshResponse], error) {
	bundle, err := s.sessions.Refresh(ctx, req.Msg.RefreshToken)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.RefreshResponse{Auth: toAPIAuthBundle(bundle)}), nil
}

// Logout revokes the session identified by the refresh token.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Logout(ctx, userID, req.Msg.RefreshToken); err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.LogoutResponse{}), nil
}

// LogoutAll revokes every session of the caller.
func (s *AuthService) LogoutAll(ctx context.Context, req *connect.Request[api.LogoutAllRequest]) (*connect.Response[api.LogoutAllResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.LogoutAll(ctx, userID); err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.LogoutAllResponse{}), nil
}

// ChangePassword sets a new password and revokes every session.
func (s *AuthService) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.ChangePassword(ctx, userID, req.Msg.CurrentPassword, req.Msg.NewPassword); err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	s.logger.InfoContext(ctx, "Password changed", "user_id", userID)
	return connect.NewResponse(&api.ChangePasswordResponse{}), nil
}
