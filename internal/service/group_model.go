package service

import (
	"github.com/gofrs/uuid/v5"
)

// Group represents a group in the service layer.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
}

// GroupMember is a resolved member row for display.
type GroupMember struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
}

// GroupWithMembers is a group plus its resolved membership.
type GroupWithMembers struct {
	Group
	Members []GroupMember
}

// GroupUpdate carries the mutable group fields.
type GroupUpdate struct {
	Name        string
	Description string
}
