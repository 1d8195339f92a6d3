package sqlstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "money-matters-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreateUser(t *testing.T, store *Store, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(email, name, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", email, err)
	}
	return user
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice@example.com", "Alice")
	mustCreateUser(t, store, "bob@example.com", "Bob")

	t.Run("GetUserByEmail finds user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != alice.ID {
			t.Fatalf("GetUserByEmail = %+v, want ID %s", got, alice.ID)
		}
		if got.PasswordHash != "hash" {
			t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "hash")
		}
		if got.CreatedAt.UnixMilli() != alice.CreatedAt.UnixMilli() {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, alice.CreatedAt)
		}
	})

	t.Run("missing user returns nil without error", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, "nonexistent-id")
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil user, got %+v", got)
		}
	})

	t.Run("duplicate email is ErrDuplicate", func(t *testing.T) {
		dup := models.NewUser("alice@example.com", "Other Alice", "hash")
		err := store.CreateUser(ctx, dup)
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("CreateUser duplicate error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("UpdatePasswordHash", func(t *testing.T) {
		if err := store.UpdatePasswordHash(ctx, alice.ID, "new-hash"); err != nil {
			t.Fatalf("UpdatePasswordHash failed: %v", err)
		}
		got, _ := store.GetUserByID(ctx, alice.ID)
		if got.PasswordHash != "new-hash" {
			t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "new-hash")
		}
		if err := store.UpdatePasswordHash(ctx, "nonexistent-id", "x"); err == nil {
			t.Error("expected error for unknown user")
		}
	})

	t.Run("SearchUsersByEmail is case-insensitive", func(t *testing.T) {
		users, err := store.SearchUsersByEmail(ctx, "ALICE", 10)
		if err != nil {
			t.Fatalf("SearchUsersByEmail failed: %v", err)
		}
		if len(users) != 1 || users[0].ID != alice.ID {
			t.Errorf("SearchUsersByEmail = %v, want only Alice", users)
		}

		users, err = store.SearchUsersByEmail(ctx, "example.com", 1)
		if err != nil {
			t.Fatalf("SearchUsersByEmail failed: %v", err)
		}
		if len(users) != 1 {
			t.Errorf("limit not applied: got %d users", len(users))
		}

		users, _ = store.SearchUsersByEmail(ctx, "%", 10)
		if len(users) != 0 {
			t.Errorf("wildcard should be literal, got %d users", len(users))
		}
	})
}

func TestRefreshTokens(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := mustCreateUser(t, store, "carol@example.com", "Carol")
	other := mustCreateUser(t, store, "dave@example.com", "Dave")
	now := time.Now().UTC()

	live := &models.RefreshToken{UserID: user.ID, TokenHash: "h1", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	expired := &models.RefreshToken{UserID: user.ID, TokenHash: "h2", ExpiresAt: now.Add(-time.Hour), CreatedAt: now.Add(-2 * time.Hour)}
	otherTok := &models.RefreshToken{UserID: other.ID, TokenHash: "h3", ExpiresAt: now.Add(time.Hour)}
	for _, tok := range []*models.RefreshToken{live, expired, otherTok} {
		if err := store.CreateRefreshToken(ctx, tok); err != nil {
			t.Fatalf("CreateRefreshToken failed: %v", err)
		}
		if tok.ID == "" {
			t.Fatal("expected token ID to be generated")
		}
	}

	tokens, err := store.ListRefreshTokensByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListRefreshTokensByUser failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].ID != live.ID {
		t.Errorf("expected newest token first, got %s", tokens[0].ID)
	}

	n, err := store.DeleteExpiredRefreshTokens(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpiredRefreshTokens failed: %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d tokens, want 1", n)
	}

	deleted, err := store.DeleteRefreshToken(ctx, live.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteRefreshToken = %v, %v; want true, nil", deleted, err)
	}
	deleted, err = store.DeleteRefreshToken(ctx, live.ID)
	if err != nil || deleted {
		t.Errorf("second DeleteRefreshToken = %v, %v; want false, nil", deleted, err)
	}

	n, err = store.DeleteRefreshTokensByUser(ctx, other.ID)
	if err != nil || n != 1 {
		t.Errorf("DeleteRefreshTokensByUser = %d, %v; want 1, nil", n, err)
	}
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice@example.com", "Alice")
	bob := mustCreateUser(t, store, "bob@example.com", "Bob")

	group := &models.Group{Name: "Roommates", CreatedByID: alice.ID}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" || group.CreatedAt.IsZero() {
		t.Fatal("expected ID and CreatedAt to be generated")
	}

	isMember, err := store.IsGroupMember(ctx, group.ID, alice.ID)
	if err != nil || !isMember {
		t.Fatalf("creator should be a member: %v, %v", isMember, err)
	}
	isMember, _ = store.IsGroupMember(ctx, group.ID, bob.ID)
	if isMember {
		t.Fatal("bob should not be a member yet")
	}

	if err := store.AddGroupMember(ctx, group.ID, bob.ID); err != nil {
		t.Fatalf("AddGroupMember failed: %v", err)
	}
	if err := store.AddGroupMember(ctx, group.ID, bob.ID); !errors.Is(err, storage.ErrDuplicate) {
		t.Errorf("duplicate AddGroupMember error = %v, want ErrDuplicate", err)
	}

	got, err := store.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if got.Name != "Roommates" || got.CreatedByID != alice.ID {
		t.Errorf("GetGroup = %+v", got)
	}
	if len(got.Members) != 2 || got.Members[0].Name != "Alice" || got.Members[1].Name != "Bob" {
		t.Errorf("Members = %+v, want [Alice Bob]", got.Members)
	}

	missing, err := store.GetGroup(ctx, "nonexistent-id")
	if err != nil || missing != nil {
		t.Errorf("GetGroup(missing) = %v, %v; want nil, nil", missing, err)
	}

	groups, err := store.ListGroupsByMember(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListGroupsByMember failed: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Members) != 2 {
		t.Errorf("ListGroupsByMember = %+v", groups)
	}
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice@example.com", "Alice")
	bob := mustCreateUser(t, store, "bob@example.com", "Bob")
	carol := mustCreateUser(t, store, "carol@example.com", "Carol")

	group := &models.Group{Name: "Trip", CreatedByID: alice.ID}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, u := range []*models.User{bob, carol} {
		if err := store.AddGroupMember(ctx, group.ID, u.ID); err != nil {
			t.Fatalf("AddGroupMember failed: %v", err)
		}
	}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dinner := &models.Expense{
		GroupID:     group.ID,
		PaidByID:    alice.ID,
		Amount:      decimal.RequireFromString("100.00"),
		Description: "Dinner",
		Date:        "2026-03-01",
		CreatedAt:   base,
		Splits: []models.ExpenseSplit{
			{UserID: alice.ID, Share: decimal.RequireFromString("50.00"), Paid: true},
			{UserID: bob.ID, Share: decimal.RequireFromString("50.00")},
		},
	}
	taxi := &models.Expense{
		GroupID:   group.ID,
		PaidByID:  bob.ID,
		Amount:    decimal.RequireFromString("30.30"),
		Date:      "2026-03-01",
		CreatedAt: base.Add(time.Minute),
		Splits: []models.ExpenseSplit{
			{UserID: alice.ID, Share: decimal.RequireFromString("10.10")},
			{UserID: bob.ID, Share: decimal.RequireFromString("10.10"), Paid: true},
			{UserID: carol.ID, Share: decimal.RequireFromString("10.10")},
		},
	}
	older := &models.Expense{
		GroupID:   group.ID,
		PaidByID:  carol.ID,
		Amount:    decimal.RequireFromString("9.99"),
		Date:      "2026-02-27",
		CreatedAt: base.Add(time.Hour),
		Splits: []models.ExpenseSplit{
			{UserID: carol.ID, Share: decimal.RequireFromString("9.99"), Paid: true},
		},
	}
	for _, e := range []*models.Expense{dinner, taxi, older} {
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}

	t.Run("GetExpense returns splits and names", func(t *testing.T) {
		got, err := store.GetExpense(ctx, dinner.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.PaidByName != "Alice" {
			t.Errorf("PaidByName = %q, want Alice", got.PaidByName)
		}
		if !got.Amount.Equal(decimal.RequireFromString("100")) {
			t.Errorf("Amount = %s, want 100", got.Amount)
		}
		if len(got.Splits) != 2 {
			t.Fatalf("expected 2 splits, got %d", len(got.Splits))
		}
		if got.Splits[0].UserName != "Alice" || !got.Splits[0].Paid || got.Splits[1].Paid {
			t.Errorf("unexpected splits: %+v", got.Splits)
		}
	})

	t.Run("ListExpensesByGroup orders by date then creation time", func(t *testing.T) {
		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		want := []string{taxi.ID, dinner.ID, older.ID}
		if len(expenses) != len(want) {
			t.Fatalf("expected %d expenses, got %d", len(want), len(expenses))
		}
		for i, id := range want {
			if expenses[i].ID != id {
				t.Errorf("expenses[%d] = %s, want %s", i, expenses[i].ID, id)
			}
		}
		if len(expenses[0].Splits) != 3 {
			t.Errorf("taxi splits = %d, want 3", len(expenses[0].Splits))
		}
	})

	t.Run("GroupTotals aggregates paid and owed", func(t *testing.T) {
		totals, err := store.GroupTotals(ctx, group.ID)
		if err != nil {
			t.Fatalf("GroupTotals failed: %v", err)
		}
		want := map[string][2]int64{
			alice.ID: {10000, 6010},
			bob.ID:   {3030, 6010},
			carol.ID: {999, 2009},
		}
		if len(totals) != len(want) {
			t.Fatalf("expected %d rows, got %d", len(want), len(totals))
		}
		for _, tot := range totals {
			w := want[tot.UserID]
			if tot.PaidCents != w[0] || tot.OwedCents != w[1] {
				t.Errorf("%s: paid=%d owed=%d, want paid=%d owed=%d",
					tot.Name, tot.PaidCents, tot.OwedCents, w[0], w[1])
			}
		}
	})

	t.Run("CreateExpense is all-or-nothing", func(t *testing.T) {
		bad := &models.Expense{
			GroupID:  group.ID,
			PaidByID: alice.ID,
			Amount:   decimal.RequireFromString("20"),
			Date:     "2026-03-02",
			Splits: []models.ExpenseSplit{
				{UserID: alice.ID, Share: decimal.RequireFromString("10"), Paid: true},
				{UserID: "ghost-user", Share: decimal.RequireFromString("10")},
			},
		}
		if err := store.CreateExpense(ctx, bad); err == nil {
			t.Fatal("expected foreign key failure")
		}

		got, err := store.GetExpense(ctx, bad.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got != nil {
			t.Errorf("expense should have been rolled back, got %+v", got)
		}
		expenses, _ := store.ListExpensesByGroup(ctx, group.ID)
		if len(expenses) != 3 {
			t.Errorf("expected 3 expenses after rollback, got %d", len(expenses))
		}
	})
}

func TestRebind(t *testing.T) {
	tests := []struct {
		dialect Dialect
		in      string
		want    string
	}{
		{DialectSQLite, "SELECT 1 WHERE a = ? AND b = ?", "SELECT 1 WHERE a = ? AND b = ?"},
		{DialectPostgres, "SELECT 1 WHERE a = ? AND b = ?", "SELECT 1 WHERE a = $1 AND b = $2"},
		{DialectPostgres, "SELECT 1", "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect)+" "+tt.in, func(t *testing.T) {
			s := &Store{dialect: tt.dialect}
			if got := s.rebind(tt.in); got != tt.want {
				t.Errorf("rebind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "?"},
		{3, "?, ?, ?"},
	}
	for _, tt := range tests {
		if got := placeholders(tt.n); got != tt.want {
			t.Errorf("placeholders(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
