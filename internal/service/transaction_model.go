package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer. GroupID is nil
// for personal transactions.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	GroupID         *uuid.UUID
	TransactionName string
	Type            sqlconfig.TransactionType
	Amount          decimal.Decimal
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
