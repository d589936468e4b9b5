package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidType      = errors.New("transaction type must be income or expense")
)

// CreateTransaction records a transaction after verifying the category
// belongs to the acting user. The check and the insert share the worker's
// transaction so a concurrently deleted category cannot slip through.
type CreateTransaction struct {
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	GroupID         *uuid.UUID
	TransactionName string
	Type            sqlconfig.TransactionType
	Amount          decimal.Decimal
	TransactionDate time.Time
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	if !a.Type.Valid() {
		return uuid.Nil, ErrInvalidType
	}
	if a.Amount.IsNegative() {
		return uuid.Nil, ErrNegativeAmount
	}

	category, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return uuid.Nil, err
	}
	if category == nil || category.UserID != a.UserID {
		return uuid.Nil, ErrCategoryNotFound
	}

	if a.GroupID != nil {
		isMember, err := writer.Groups.IsMember(ctx, *a.GroupID, a.UserID)
		if err != nil {
			return uuid.Nil, err
		}
		if !isMember {
			return uuid.Nil, ErrGroupNotFound
		}
	}

	create := &sqlconfig.TransactionCreate{
		UserID:          a.UserID,
		CategoryID:      a.CategoryID,
		TransactionName: a.TransactionName,
		Type:            a.Type,
		Amount:          a.Amount,
		TransactionDate: a.TransactionDate,
	}
	if a.GroupID != nil {
		create.GroupID = uuid.NullUUID{UUID: *a.GroupID, Valid: true}
	}

	return writer.Transactions.Insert(ctx, create)
}
