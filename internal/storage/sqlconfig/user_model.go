package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record.
type User struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	FirstName      string
	LastName       string
	Email          string
	HashedPassword string
}

//go:generate mockery --name IUserTable --output mock_IUserTable.go

// IUserTable defines the interface for user storage operations.
type IUserTable interface {
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
