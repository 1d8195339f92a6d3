package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/storage/sqlstore"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "money-matters-auth-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlstore.New(filepath.Join(tempDir, "auth.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestSessions(t *testing.T) (*SessionManager, *sqlstore.Store, *testClock) {
	t.Helper()
	store := newTestStore(t)
	clock := &testClock{now: time.Now().UTC()}

	sessions := NewSessionManager(
		NewPasswordAuthenticator(store, bcrypt.MinCost),
		store,
		store,
		NewJWTManager(AccessToken, "test-access-secret", 15*time.Minute),
		NewJWTManager(RefreshToken, "test-refresh-secret", 7*24*time.Hour),
		bcrypt.MinCost,
		WithClock(clock.Now),
	)
	return sessions, store, clock
}

func storedTokenCount(t *testing.T, store *sqlstore.Store, userID string) int {
	t.Helper()
	tokens, err := store.ListRefreshTokensByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListRefreshTokensByUser failed: %v", err)
	}
	return len(tokens)
}

func TestSessionManager_Register(t *testing.T) {
	sessions, store, _ := newTestSessions(t)
	ctx := context.Background()

	bundle, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if bundle.AccessToken == "" || bundle.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if bundle.User.Email != "alice@example.com" || bundle.User.Name != "Alice" || bundle.User.ID == "" {
		t.Errorf("unexpected user summary: %+v", bundle.User)
	}

	tokens, _ := store.ListRefreshTokensByUser(ctx, bundle.User.ID)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 stored refresh token, got %d", len(tokens))
	}
	if tokens[0].TokenHash == bundle.RefreshToken {
		t.Error("raw refresh token must not be stored")
	}

	_, err = sessions.Register(ctx, "alice@example.com", "password123", "Alice Again")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("duplicate Register kind = %v, want conflict", apperr.KindOf(err))
	}
}

func TestSessionManager_LoginErrorsAreIndistinguishable(t *testing.T) {
	sessions, _, _ := newTestSessions(t)
	ctx := context.Background()

	if _, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPassword := sessions.Login(ctx, "alice@example.com", "not-the-password")
	_, unknownEmail := sessions.Login(ctx, "ghost@example.com", "password123")

	for _, err := range []error{wrongPassword, unknownEmail} {
		if apperr.KindOf(err) != apperr.KindUnauthorized {
			t.Errorf("Login error kind = %v, want unauthorized", apperr.KindOf(err))
		}
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestSessionManager_LoginKeepsOtherSessions(t *testing.T) {
	sessions, store, _ := newTestSessions(t)
	ctx := context.Background()

	first, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	second, err := sessions.Login(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if got := storedTokenCount(t, store, first.User.ID); got != 2 {
		t.Errorf("stored tokens = %d, want 2", got)
	}

	// Both devices can still refresh.
	if _, err := sessions.Refresh(ctx, first.RefreshToken); err != nil {
		t.Errorf("refresh of first session failed: %v", err)
	}
	if _, err := sessions.Refresh(ctx, second.RefreshToken); err != nil {
		t.Errorf("refresh of second session failed: %v", err)
	}
}

func TestSessionManager_RefreshRotatesAndIsSingleUse(t *testing.T) {
	sessions, store, _ := newTestSessions(t)
	ctx := context.Background()

	original, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rotated, err := sessions.Refresh(ctx, original.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if rotated.RefreshToken == original.RefreshToken {
		t.Error("refresh must return a new refresh token")
	}
	if rotated.User.ID != original.User.ID {
		t.Errorf("user changed across refresh: %s vs %s", rotated.User.ID, original.User.ID)
	}
	if got := storedTokenCount(t, store, original.User.ID); got != 1 {
		t.Errorf("stored tokens after rotation = %d, want 1", got)
	}

	_, err = sessions.Refresh(ctx, original.RefreshToken)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("second use of original token error = %v, want ErrInvalidRefreshToken", err)
	}

	// The replacement is still usable.
	if _, err := sessions.Refresh(ctx, rotated.RefreshToken); err != nil {
		t.Errorf("refresh with rotated token failed: %v", err)
	}
}

func TestSessionManager_RefreshRejects(t *testing.T) {
	sessions, _, clock := newTestSessions(t)
	ctx := context.Background()

	bundle, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("access token", func(t *testing.T) {
		_, err := sessions.Refresh(ctx, bundle.AccessToken)
		if !errors.Is(err, ErrInvalidRefreshToken) {
			t.Errorf("error = %v, want ErrInvalidRefreshToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := sessions.Refresh(ctx, "garbage")
		if !errors.Is(err, ErrInvalidRefreshToken) {
			t.Errorf("error = %v, want ErrInvalidRefreshToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		clock.Advance(8 * 24 * time.Hour)
		_, err := sessions.Refresh(ctx, bundle.RefreshToken)
		if !errors.Is(err, ErrInvalidRefreshToken) {
			t.Errorf("error = %v, want ErrInvalidRefreshToken", err)
		}
	})
}

func TestSessionManager_ConcurrentRefreshSucceedsOnce(t *testing.T) {
	sessions, _, _ := newTestSessions(t)
	ctx := context.Background()

	bundle, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	const attempts = 4
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = sessions.Refresh(ctx, bundle.RefreshToken)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case !errors.Is(err, ErrInvalidRefreshToken):
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successful refreshes = %d, want 1", successes)
	}
}

func TestSessionManager_Logout(t *testing.T) {
	sessions, store, _ := newTestSessions(t)
	ctx := context.Background()

	alice, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	bob, err := sessions.Register(ctx, "bob@example.com", "password123", "Bob")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("token of another user", func(t *testing.T) {
		err := sessions.Logout(ctx, bob.User.ID, alice.RefreshToken)
		if !errors.Is(err, ErrTokenUserMismatch) {
			t.Errorf("error = %v, want ErrTokenUserMismatch", err)
		}
		if got := storedTokenCount(t, store, alice.User.ID); got != 1 {
			t.Errorf("alice's session should survive, stored = %d", got)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		err := sessions.Logout(ctx, alice.User.ID, "garbage")
		if apperr.KindOf(err) != apperr.KindBadRequest {
			t.Errorf("kind = %v, want bad_request", apperr.KindOf(err))
		}
	})

	t.Run("revokes and is idempotent", func(t *testing.T) {
		if err := sessions.Logout(ctx, alice.User.ID, alice.RefreshToken); err != nil {
			t.Fatalf("Logout failed: %v", err)
		}
		if got := storedTokenCount(t, store, alice.User.ID); got != 0 {
			t.Errorf("stored tokens = %d, want 0", got)
		}
		if _, err := sessions.Refresh(ctx, alice.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
			t.Errorf("refresh after logout error = %v, want ErrInvalidRefreshToken", err)
		}
		if err := sessions.Logout(ctx, alice.User.ID, alice.RefreshToken); err != nil {
			t.Errorf("second Logout = %v, want nil", err)
		}
	})
}

func TestSessionManager_LogoutAll(t *testing.T) {
	sessions, store, _ := newTestSessions(t)
	ctx := context.Background()

	first, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := sessions.Login(ctx, "alice@example.com", "password123"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
	}
	if got := storedTokenCount(t, store, first.User.ID); got != 4 {
		t.Fatalf("stored tokens = %d, want 4", got)
	}

	if err := sessions.LogoutAll(ctx, first.User.ID); err != nil {
		t.Fatalf("LogoutAll failed: %v", err)
	}
	if got := storedTokenCount(t, store, first.User.ID); got != 0 {
		t.Errorf("stored tokens after LogoutAll = %d, want 0", got)
	}
	if _, err := sessions.Refresh(ctx, first.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("refresh after LogoutAll error = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestSessionManager_ValidateUser(t *testing.T) {
	sessions, _, _ := newTestSessions(t)
	ctx := context.Background()

	bundle, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := sessions.ValidateUser(ctx, bundle.User.ID)
	if err != nil || user.Email != "alice@example.com" {
		t.Errorf("ValidateUser = %+v, %v", user, err)
	}

	_, err = sessions.ValidateUser(ctx, "missing-user")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not_found", apperr.KindOf(err))
	}
}

func TestSessionManager_ChangePassword(t *testing.T) {
	sessions, store, _ := newTestSessions(t)
	ctx := context.Background()

	bundle, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err = sessions.ChangePassword(ctx, bundle.User.ID, "wrong-password", "new-password-1")
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("wrong current password kind = %v, want unauthorized", apperr.KindOf(err))
	}

	err = sessions.ChangePassword(ctx, bundle.User.ID, "password123", "short")
	if !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak new password error = %v, want ErrWeakPassword", err)
	}

	if err := sessions.ChangePassword(ctx, bundle.User.ID, "password123", "new-password-1"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if got := storedTokenCount(t, store, bundle.User.ID); got != 0 {
		t.Errorf("sessions should be revoked, stored = %d", got)
	}
	if _, err := sessions.Login(ctx, "alice@example.com", "password123"); err == nil {
		t.Error("old password should no longer work")
	}
	if _, err := sessions.Login(ctx, "alice@example.com", "new-password-1"); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}

func TestSessionManager_SweepExpired(t *testing.T) {
	sessions, store, clock := newTestSessions(t)
	ctx := context.Background()

	old, err := sessions.Register(ctx, "alice@example.com", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	clock.Advance(6 * 24 * time.Hour)
	if _, err := sessions.Login(ctx, "alice@example.com", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	clock.Advance(2 * 24 * time.Hour)
	n, err := sessions.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired failed: %v", err)
	}
	if n != 1 {
		t.Errorf("swept = %d, want 1", n)
	}
	if got := storedTokenCount(t, store, old.User.ID); got != 1 {
		t.Errorf("stored tokens = %d, want 1", got)
	}
}
