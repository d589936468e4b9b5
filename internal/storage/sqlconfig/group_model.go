package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Group represents a group record. Groups bundle transactions from several
// users (e.g. a family budget) under one owner.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
}

// GroupCreate is the input for creating a new group.
type GroupCreate struct {
	Name        string
	Description string
	OwnerID     uuid.UUID
}

// GroupUpdate is the input for updating an existing group.
type GroupUpdate struct {
	Name        string
	Description string
}

// GroupMember is a resolved member row for display.
type GroupMember struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
}

//go:generate mockery --name IGroupTable --output mock_IGroupTable.go

// IGroupTable defines the interface for group storage operations.
type IGroupTable interface {
	Insert(ctx context.Context, create *GroupCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*Group, error)
	Update(ctx context.Context, id uuid.UUID, update *GroupUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*GroupMember, error)
	MemberCount(ctx context.Context, groupID uuid.UUID) (int, error)
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
}
