package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// GroupService handles group and membership business logic. Creation runs
// through the operator so inserting the group and enrolling the owner share
// one transaction.
type GroupService struct {
	storage *storage.Storage
}

// NewGroupService creates a new GroupService.
func NewGroupService(store *storage.Storage) *GroupService {
	return &GroupService{storage: store}
}

// GetGroup returns a group with its members. Requesters who are neither
// owner nor member get ErrNotFound.
func (s *GroupService) GetGroup(ctx context.Context, requesterID, groupID uuid.UUID) (*GroupWithMembers, error) {
	group, err := s.requireAccess(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members := make([]GroupMember, len(rows))
	for i, row := range rows {
		members[i] = GroupMember{
			UserID:    row.UserID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		}
	}

	return &GroupWithMembers{
		Group: Group{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
			OwnerID:     group.OwnerID,
		},
		Members: members,
	}, nil
}

// ListGroups returns groups the user owns or belongs to.
func (s *GroupService) ListGroups(ctx context.Context, userID uuid.UUID) ([]Group, error) {
	rows, err := s.storage.Groups.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, len(rows))
	for i, row := range rows {
		groups[i] = Group{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			OwnerID:     row.OwnerID,
		}
	}
	return groups, nil
}

// UpdateGroup changes a group's name and description. Owner only.
func (s *GroupService) UpdateGroup(ctx context.Context, requesterID, groupID uuid.UUID, update GroupUpdate) error {
	if err := s.requireOwner(ctx, requesterID, groupID); err != nil {
		return err
	}
	return s.storage.Groups.Update(ctx, groupID, &sqlconfig.GroupUpdate{
		Name:        update.Name,
		Description: update.Description,
	})
}

// DeleteGroup removes a group. Owner only.
func (s *GroupService) DeleteGroup(ctx context.Context, requesterID, groupID uuid.UUID) error {
	if err := s.requireOwner(ctx, requesterID, groupID); err != nil {
		return err
	}
	return s.storage.Groups.Delete(ctx, groupID)
}

// AddMember enrolls a user in a group. Owner only. The user must exist.
func (s *GroupService) AddMember(ctx context.Context, requesterID, groupID, userID uuid.UUID) error {
	if err := s.requireOwner(ctx, requesterID, groupID); err != nil {
		return err
	}

	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	return s.storage.Groups.AddMember(ctx, groupID, userID)
}

// RemoveMember removes a user from a group. Owner only; the owner cannot be
// removed from their own group.
func (s *GroupService) RemoveMember(ctx context.Context, requesterID, groupID, userID uuid.UUID) error {
	if err := s.requireOwner(ctx, requesterID, groupID); err != nil {
		return err
	}
	if userID == requesterID {
		return ErrForbidden
	}
	return s.storage.Groups.RemoveMember(ctx, groupID, userID)
}

// RequireAccess verifies the group exists and the requester may see it. The
// analytics handler calls this before invoking the aggregation engine, which
// itself assumes existence (a group with no matching activity is a valid
// zero-summary, not a 404).
func (s *GroupService) RequireAccess(ctx context.Context, requesterID, groupID uuid.UUID) error {
	_, err := s.requireAccess(ctx, requesterID, groupID)
	return err
}

func (s *GroupService) requireAccess(ctx context.Context, requesterID, groupID uuid.UUID) (*sqlconfig.Group, error) {
	group, err := s.storage.Groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}
	if group.OwnerID == requesterID {
		return group, nil
	}

	isMember, err := s.storage.Groups.IsMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotFound
	}
	return group, nil
}

func (s *GroupService) requireOwner(ctx context.Context, requesterID, groupID uuid.UUID) error {
	group, err := s.storage.Groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrNotFound
	}
	if group.OwnerID != requesterID {
		return ErrForbidden
	}
	return nil
}
