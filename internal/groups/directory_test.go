package groups

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/internal/storage/sqlstore"
)

func setupDirectory(t *testing.T) (*Directory, *sqlstore.Store) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "money-matters-groups-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlstore.New(filepath.Join(tempDir, "groups.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewDirectory(store, nil), store
}

func createUser(t *testing.T, store *sqlstore.Store, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(email, name, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestCreateGroup(t *testing.T) {
	dir, store := setupDirectory(t)
	ctx := context.Background()
	alice := createUser(t, store, "alice@example.com", "Alice")

	group, err := dir.CreateGroup(ctx, alice.ID, "  Roommates ")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" {
		t.Error("expected group ID to be set")
	}
	if group.Name != "Roommates" {
		t.Errorf("Name = %q, want %q", group.Name, "Roommates")
	}
	if group.CreatedByID != alice.ID {
		t.Errorf("CreatedByID = %q, want %q", group.CreatedByID, alice.ID)
	}
	if len(group.Members) != 1 || group.Members[0].ID != alice.ID {
		t.Errorf("Members = %+v, want only the creator", group.Members)
	}

	ok, err := dir.IsMember(ctx, alice.ID, group.ID)
	if err != nil || !ok {
		t.Errorf("IsMember(creator) = %v, %v; want true", ok, err)
	}

	for _, name := range []string{"", "   "} {
		if _, err := dir.CreateGroup(ctx, alice.ID, name); apperr.KindOf(err) != apperr.KindBadRequest {
			t.Errorf("CreateGroup(%q) kind = %v, want bad_request", name, apperr.KindOf(err))
		}
	}
}

func TestGetGroup(t *testing.T) {
	dir, store := setupDirectory(t)
	ctx := context.Background()
	alice := createUser(t, store, "alice@example.com", "Alice")
	bob := createUser(t, store, "bob@example.com", "Bob")

	group, err := dir.CreateGroup(ctx, alice.ID, "Trip")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	tests := []struct {
		name    string
		groupID string
		actorID string
		want    apperr.Kind
		wantErr bool
	}{
		{name: "member", groupID: group.ID, actorID: alice.ID},
		{name: "non-member", groupID: group.ID, actorID: bob.ID, want: apperr.KindForbidden, wantErr: true},
		{name: "missing group", groupID: "no-such-group", actorID: alice.ID, want: apperr.KindNotFound, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dir.GetGroup(ctx, tt.groupID, tt.actorID)
			if tt.wantErr {
				if apperr.KindOf(err) != tt.want {
					t.Errorf("kind = %v, want %v (err %v)", apperr.KindOf(err), tt.want, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetGroup failed: %v", err)
			}
			if got.ID != group.ID {
				t.Errorf("ID = %q, want %q", got.ID, group.ID)
			}
		})
	}
}

func TestAddMember(t *testing.T) {
	dir, store := setupDirectory(t)
	ctx := context.Background()
	alice := createUser(t, store, "alice@example.com", "Alice")
	bob := createUser(t, store, "bob@example.com", "Bob")
	carol := createUser(t, store, "carol@example.com", "Carol")

	group, err := dir.CreateGroup(ctx, alice.ID, "Trip")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	updated, err := dir.AddMember(ctx, group.ID, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if !updated.HasMember(bob.ID) || len(updated.Members) != 2 {
		t.Errorf("Members = %+v, want alice and bob", updated.Members)
	}

	if _, err := dir.AddMember(ctx, group.ID, alice.ID, bob.ID); apperr.KindOf(err) != apperr.KindConflict {
		t.Errorf("duplicate AddMember kind = %v, want conflict", apperr.KindOf(err))
	}
	if _, err := dir.AddMember(ctx, group.ID, carol.ID, carol.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("non-member actor kind = %v, want forbidden", apperr.KindOf(err))
	}
	if _, err := dir.AddMember(ctx, group.ID, alice.ID, "ghost"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown user kind = %v, want not_found", apperr.KindOf(err))
	}
	if _, err := dir.AddMember(ctx, "no-such-group", alice.ID, carol.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("unknown group kind = %v, want not_found", apperr.KindOf(err))
	}

	// Bob, now a member, can add Carol.
	if _, err := dir.AddMember(ctx, group.ID, bob.ID, carol.ID); err != nil {
		t.Errorf("AddMember by new member failed: %v", err)
	}
}

func TestListGroups(t *testing.T) {
	dir, store := setupDirectory(t)
	ctx := context.Background()
	alice := createUser(t, store, "alice@example.com", "Alice")
	bob := createUser(t, store, "bob@example.com", "Bob")

	trip, err := dir.CreateGroup(ctx, alice.ID, "Trip")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if _, err := dir.CreateGroup(ctx, bob.ID, "Bob's flat"); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	groups, err := dir.ListGroups(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != trip.ID {
		t.Fatalf("ListGroups(alice) = %+v, want only Trip", groups)
	}

	if _, err := dir.AddMember(ctx, trip.ID, alice.ID, bob.ID); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	groups, err = dir.ListGroups(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("ListGroups(bob) returned %d groups, want 2", len(groups))
	}
}

func TestIsMember(t *testing.T) {
	dir, store := setupDirectory(t)
	ctx := context.Background()
	alice := createUser(t, store, "alice@example.com", "Alice")
	bob := createUser(t, store, "bob@example.com", "Bob")

	group, err := dir.CreateGroup(ctx, alice.ID, "Trip")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if ok, _ := dir.IsMember(ctx, bob.ID, group.ID); ok {
		t.Error("bob should not be a member")
	}
	if ok, _ := dir.IsMember(ctx, alice.ID, "no-such-group"); ok {
		t.Error("a missing group has no members")
	}
}

func TestSearchUsers(t *testing.T) {
	dir, store := setupDirectory(t)
	ctx := context.Background()
	createUser(t, store, "alice@example.com", "Alice")
	createUser(t, store, "bob@example.com", "Bob")
	for i := 0; i < 12; i++ {
		createUser(t, store, fmt.Sprintf("member%02d@corp.test", i), fmt.Sprintf("Member %d", i))
	}

	tests := []struct {
		name     string
		fragment string
		want     int
	}{
		{"too short", "al", 0},
		{"case insensitive", "ALICE", 1},
		{"shared domain", "example.com", 2},
		{"capped", "corp.test", 10},
		{"no match", "nobody", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dir.SearchUsers(ctx, tt.fragment)
			if err != nil {
				t.Fatalf("SearchUsers failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("SearchUsers(%q) returned %d users, want %d", tt.fragment, len(got), tt.want)
			}
		})
	}
}
