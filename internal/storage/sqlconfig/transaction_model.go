package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CategoryID      uuid.NullUUID
	GroupID         uuid.NullUUID
	TransactionName string
	Type            TransactionType
	Amount          decimal.Decimal
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	GroupID         uuid.NullUUID // personal transaction when not set
	TransactionName string
	Type            TransactionType
	Amount          decimal.Decimal
	TransactionDate time.Time // defaults to now if zero
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          *uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// LedgerFilter scopes a ledger fetch to one user or one group, an inclusive
// date range, and optionally an exact category name.
type LedgerFilter struct {
	UserID       *uuid.UUID
	GroupID      *uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	CategoryName *string
}

// LedgerEntry is the read-only projection the analytics engine consumes.
// Category and user references arrive resolved; CategoryName is empty when
// the transaction's category reference is dangling.
type LedgerEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	GroupID         uuid.NullUUID
	CategoryID      uuid.NullUUID
	CategoryName    string
	CategoryType    TransactionType
	UserFirstName   string
	UserLastName    string
	TransactionName string
	Type            TransactionType
	Amount          decimal.Decimal
	Date            time.Time
}

//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go

// ITransactionTable defines the interface for transaction storage operations.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Ledger(ctx context.Context, filter *LedgerFilter) ([]*LedgerEntry, error)
}
