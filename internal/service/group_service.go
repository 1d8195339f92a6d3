package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/pkg/api"
	"github.com/harshadbhandure/money-matters/pkg/api/apiconnect"
)

// Groups is the group directory behind GroupService.
type Groups interface {
	CreateGroup(ctx context.Context, actorID, name string) (*models.Group, error)
	ListGroups(ctx context.Context, actorID string) ([]*models.Group, error)
	GetGroup(ctx context.Context, groupID, actorID string) (*models.Group, error)
	AddMember(ctx context.Context, groupID, actorID, userID string) (*models.Group, error)
}

// GroupService implements the Connect GroupService
type GroupService struct {
	apiconnect.UnimplementedGroupServiceHandler
	groups Groups
	logger *slog.Logger
}

// NewGroupService creates a new GroupService backed by groups.
func NewGroupService(groups Groups, logger *slog.Logger) *GroupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupService{groups: groups, logger: logger}
}

// CreateGroup creates a new group with the caller as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "CreateGroup request received", "name", req.Msg.Name, "user_id", userID)

	group, err := s.groups.CreateGroup(ctx, userID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListGroups retrieves the caller's groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.ListGroups(ctx, userID)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	out := make([]*api.Group, len(groups))
	for i, g := range groups {
		out[i] = toAPIGroup(g)
	}
	s.logger.DebugContext(ctx, "ListGroups successful", "count", len(out))
	return connect.NewResponse(&api.ListGroupsResponse{Groups: out}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.groups.GetGroup(ctx, req.Msg.GroupId, userID)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// AddMember adds a user to a group the caller belongs to.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.groups.AddMember(ctx, req.Msg.GroupId, userID, req.Msg.UserId)
	if err != nil {
		return nil, toConnectError(ctx, s.logger, err)
	}

	return connect.NewResponse(&api.AddMemberResponse{Group: toAPIGroup(group)}), nil
}
