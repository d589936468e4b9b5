package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. Categories belong to exactly one user.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        TransactionType
	Description string
	CreatedAt   time.Time
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID      uuid.UUID
	Name        string
	Type        TransactionType
	Description string
}

// CategoryUpdate is the input for updating an existing category.
type CategoryUpdate struct {
	Name        string
	Description string
}

//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go

// ICategoryTable defines the interface for category storage operations.
type ICategoryTable interface {
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
