package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user in the service layer. HashedPassword never leaves
// this layer.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	IsActive  bool
	CreatedAt time.Time
}

// SignUpInput carries the fields for registering a new user.
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SignInInput carries the credentials for logging in.
type SignInInput struct {
	Email    string
	Password string
}
