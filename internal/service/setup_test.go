package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/harshadbhandure/money-matters/internal/auth"
	"github.com/harshadbhandure/money-matters/internal/groups"
	"github.com/harshadbhandure/money-matters/internal/ledger"
	"github.com/harshadbhandure/money-matters/internal/metrics"
	"github.com/harshadbhandure/money-matters/internal/storage/sqlstore"
	"github.com/harshadbhandure/money-matters/pkg/api"
	"github.com/harshadbhandure/money-matters/pkg/api/apiconnect"
)

type testServer struct {
	auth     apiconnect.AuthServiceClient
	users    apiconnect.UserServiceClient
	groups   apiconnect.GroupServiceClient
	expenses apiconnect.ExpenseServiceClient
	metrics  *metrics.Metrics
}

// setupTestServer starts every RPC service on an httptest server backed by a
// temporary SQLite database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "money-matters-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlstore.New(filepath.Join(tempDir, "service.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := metrics.New()
	access := auth.NewJWTManager(auth.AccessToken, "test-access-secret", 15*time.Minute)
	refresh := auth.NewJWTManager(auth.RefreshToken, "test-refresh-secret", 7*24*time.Hour)
	sessions := auth.NewSessionManager(
		auth.NewPasswordAuthenticator(store, bcrypt.MinCost),
		store, store, access, refresh, bcrypt.MinCost,
		auth.WithMetrics(m),
	)
	directory := groups.NewDirectory(store, nil)

	mux := http.NewServeMux()
	Mount(mux, Deps{
		Sessions:     sessions,
		AccessTokens: sessions.AccessTokens(),
		Directory:    directory,
		Ledger:       ledger.New(directory, store, ledger.WithMetrics(m)),
		Metrics:      m,
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testServer{
		auth:     apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		users:    apiconnect.NewUserServiceClient(http.DefaultClient, server.URL),
		groups:   apiconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		expenses: apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		metrics:  m,
	}
}

// authed builds a request carrying the access token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

// register signs up a user and returns the issued bundle.
func (s *testServer) register(t *testing.T, email, name string) *api.AuthBundle {
	t.Helper()
	resp, err := s.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:    email,
		Password: "password123",
		Name:     name,
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return resp.Msg.Auth
}

// createGroup creates a group owned by owner and adds members.
func (s *testServer) createGroup(t *testing.T, owner *api.AuthBundle, name string, members ...*api.AuthBundle) *api.Group {
	t.Helper()
	ctx := context.Background()

	resp, err := s.groups.CreateGroup(ctx, authed(owner.AccessToken, &api.CreateGroupRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	group := resp.Msg.Group

	for _, m := range members {
		added, err := s.groups.AddMember(ctx, authed(owner.AccessToken, &api.AddMemberRequest{
			GroupId: group.Id,
			UserId:  m.User.Id,
		}))
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		group = added.Msg.Group
	}
	return group
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}
