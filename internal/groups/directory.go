// Package groups manages groups and their memberships.
package groups

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/internal/storage"
)

const (
	maxGroupNameLength = 100

	// minSearchLength is the shortest email fragment SearchUsers accepts.
	minSearchLength = 3
	maxSearchResults = 10
)

// Store is the persistence the directory needs.
type Store interface {
	storage.GroupStore
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SearchUsersByEmail(ctx context.Context, fragment string, limit int) ([]*models.User, error)
}

// Directory answers membership questions and manages groups.
type Directory struct {
	store  Store
	logger *slog.Logger
}

// NewDirectory creates a Directory. A nil logger uses slog.Default().
func NewDirectory(store Store, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{store: store, logger: logger}
}

// CreateGroup creates a group with the actor as its first member.
func (d *Directory) CreateGroup(ctx context.Context, actorID, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.BadRequest("group name is required")
	}
	if len(name) > maxGroupNameLength {
		return nil, apperr.BadRequest("group name must be at most %d characters", maxGroupNameLength)
	}

	group := &models.Group{Name: name, CreatedByID: actorID}
	if err := d.store.CreateGroup(ctx, group); err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to create group: %w", err))
	}
	d.logger.InfoContext(ctx, "Group created", "group_id", group.ID, "created_by", actorID)

	return d.load(ctx, group.ID)
}

// ListGroups returns every group the actor belongs to.
func (d *Directory) ListGroups(ctx context.Context, actorID string) ([]*models.Group, error) {
	groups, err := d.store.ListGroupsByMember(ctx, actorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return groups, nil
}

// GetGroup returns the group if it exists and the actor is a member.
func (d *Directory) GetGroup(ctx context.Context, groupID, actorID string) (*models.Group, error) {
	group, err := d.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if group == nil {
		return nil, apperr.NotFound("group with ID %s not found", groupID)
	}
	if !group.HasMember(actorID) {
		return nil, apperr.Forbidden("you must be a member of the group")
	}
	return group, nil
}

// AddMember adds userID to the group. Only existing members may add others.
func (d *Directory) AddMember(ctx context.Context, groupID, actorID, userID string) (*models.Group, error) {
	if _, err := d.GetGroup(ctx, groupID, actorID); err != nil {
		return nil, err
	}

	user, err := d.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user with ID %s not found", userID)
	}

	if err := d.store.AddGroupMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, apperr.Conflict("user is already a member of this group")
		}
		return nil, apperr.Internal(err)
	}
	d.logger.InfoContext(ctx, "Member added", "group_id", groupID, "user_id", userID, "added_by", actorID)

	return d.load(ctx, groupID)
}

// IsMember reports whether userID belongs to groupID. A missing group has
// no members.
func (d *Directory) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	ok, err := d.store.IsGroupMember(ctx, groupID, userID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	return ok, nil
}

// SearchUsers finds users by a case-insensitive email fragment. Fragments
// shorter than three characters match nothing.
func (d *Directory) SearchUsers(ctx context.Context, fragment string) ([]models.UserSummary, error) {
	fragment = strings.TrimSpace(fragment)
	if len(fragment) < minSearchLength {
		return []models.UserSummary{}, nil
	}

	users, err := d.store.SearchUsersByEmail(ctx, fragment, maxSearchResults)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	summaries := make([]models.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = u.Summary()
	}
	return summaries, nil
}

func (d *Directory) load(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := d.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if group == nil {
		return nil, apperr.NotFound("group with ID %s not found", groupID)
	}
	return group, nil
}
