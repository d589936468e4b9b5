package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Category represents a category in the service layer.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        sqlconfig.TransactionType
	Description string
}

// CategoryUpdate carries the mutable category fields.
type CategoryUpdate struct {
	Name        string
	Description string
}
