package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/metrics"
	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/internal/storage"
)

// AuthBundle is what a successful register, login or refresh returns.
type AuthBundle struct {
	AccessToken  string
	RefreshToken string
	User         models.UserSummary
}

// SessionManager issues, rotates and revokes paired access/refresh tokens.
//
// Only bcrypt hashes of refresh tokens are stored, so validating a presented
// token scans every stored record of its subject. The scan is bounded by the
// number of live sessions per user.
type SessionManager struct {
	authenticator Authenticator
	users         UserStorage
	tokens        storage.RefreshTokenStore
	access        *JWTManager
	refresh       *JWTManager
	hashCost      int
	now           func() time.Time
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithClock overrides the time source used for token expiry checks.
func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		m.now = now
		m.access.now = now
		m.refresh.now = now
	}
}

// WithMetrics records session counters on m.
func WithMetrics(mt *metrics.Metrics) SessionOption {
	return func(m *SessionManager) { m.metrics = mt }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) SessionOption {
	return func(m *SessionManager) { m.logger = l }
}

// NewSessionManager wires a session manager. hashCost is the bcrypt cost for
// stored refresh-token hashes.
func NewSessionManager(
	authenticator Authenticator,
	users UserStorage,
	tokens storage.RefreshTokenStore,
	access, refresh *JWTManager,
	hashCost int,
	opts ...SessionOption,
) *SessionManager {
	m := &SessionManager{
		authenticator: authenticator,
		users:         users,
		tokens:        tokens,
		access:        access,
		refresh:       refresh,
		hashCost:      hashCost,
		now:           time.Now,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AccessTokens returns the manager that validates access tokens.
func (m *SessionManager) AccessTokens() *JWTManager {
	return m.access
}

// Register creates an account and signs the new user in.
func (m *SessionManager) Register(ctx context.Context, email, password, name string) (*AuthBundle, error) {
	user, err := m.authenticator.Register(ctx, email, name, password)
	if err != nil {
		return nil, err
	}
	m.logger.InfoContext(ctx, "User registered", "user_id", user.ID)
	return m.issue(ctx, user)
}

// Login verifies credentials and issues a new session. Existing sessions of
// the user stay valid.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*AuthBundle, error) {
	user, err := m.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.issue(ctx, user)
}

// Refresh consumes a refresh token and issues a new session. Each refresh
// token can be used once: the stored record is deleted before the new pair is
// issued, and a caller that loses the delete race is rejected.
func (m *SessionManager) Refresh(ctx context.Context, refreshToken string) (*AuthBundle, error) {
	claims, err := m.refresh.Validate(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := m.findStoredToken(ctx, claims.UserID(), refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrInvalidRefreshToken
	}

	deleted, err := m.tokens.DeleteRefreshToken(ctx, stored.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !deleted {
		m.logger.WarnContext(ctx, "Refresh token already consumed", "user_id", claims.UserID())
		return nil, ErrInvalidRefreshToken
	}
	m.metrics.TokenRotated()

	user, err := m.ValidateUser(ctx, claims.UserID())
	if err != nil {
		return nil, err
	}
	return m.issue(ctx, user)
}

// Logout revokes one session of userID. The token must belong to userID;
// a token with no stored record is not an error.
func (m *SessionManager) Logout(ctx context.Context, userID, refreshToken string) error {
	claims, err := m.refresh.Validate(refreshToken)
	if err != nil {
		return ErrMalformedToken
	}
	if claims.UserID() != userID {
		return ErrTokenUserMismatch
	}

	stored, err := m.findStoredToken(ctx, userID, refreshToken)
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}

	if _, err := m.tokens.DeleteRefreshToken(ctx, stored.ID); err != nil {
		return apperr.Internal(err)
	}
	m.logger.InfoContext(ctx, "Session revoked", "user_id", userID)
	return nil
}

// LogoutAll revokes every session of userID.
func (m *SessionManager) LogoutAll(ctx context.Context, userID string) error {
	n, err := m.tokens.DeleteRefreshTokensByUser(ctx, userID)
	if err != nil {
		return apperr.Internal(err)
	}
	m.logger.InfoContext(ctx, "All sessions revoked", "user_id", userID, "count", n)
	return nil
}

// ValidateUser returns the user, or NotFound if it no longer exists.
func (m *SessionManager) ValidateUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := m.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", userID)
	}
	return user, nil
}

// ChangePassword replaces the user's password and signs out every session.
func (m *SessionManager) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if err := m.authenticator.ChangeCredential(ctx, userID, currentPassword, newPassword); err != nil {
		return err
	}
	return m.LogoutAll(ctx, userID)
}

// SweepExpired deletes every stored refresh token that has expired.
func (m *SessionManager) SweepExpired(ctx context.Context) (int64, error) {
	n, err := m.tokens.DeleteExpiredRefreshTokens(ctx, m.now())
	if err != nil {
		return 0, apperr.Internal(err)
	}
	m.metrics.TokensSwept(n)
	return n, nil
}

// findStoredToken returns the unexpired stored record matching token, or nil.
func (m *SessionManager) findStoredToken(ctx context.Context, userID, token string) (*models.RefreshToken, error) {
	stored, err := m.tokens.ListRefreshTokensByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := m.now()
	for _, rec := range stored {
		if rec.Active(now) && refreshTokenMatches(rec.TokenHash, token) {
			return rec, nil
		}
	}
	return nil, nil
}

// issue signs a new token pair for user and stores the refresh token hash.
func (m *SessionManager) issue(ctx context.Context, user *models.User) (*AuthBundle, error) {
	accessToken, _, err := m.access.Generate(user)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken, expiresAt, err := m.refresh.Generate(user)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	hash, err := hashRefreshToken(refreshToken, m.hashCost)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to hash refresh token: %w", err))
	}

	if err := m.tokens.CreateRefreshToken(ctx, &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
		CreatedAt: m.now().UTC(),
	}); err != nil {
		return nil, apperr.Internal(err)
	}
	m.metrics.SessionIssued()

	return &AuthBundle{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Summary(),
	}, nil
}
