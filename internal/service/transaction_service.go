package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction read paths. Creation runs through
// the operator so the category check and the insert share one transaction.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns a page of the user's transactions using
// cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          &userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = serviceTransaction(row)
	}

	return convertedTransactions, nextCursor, nil
}

func serviceTransaction(row *sqlconfig.Transaction) Transaction {
	tx := Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		TransactionName: row.TransactionName,
		Type:            row.Type,
		Amount:          row.Amount,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
	if row.CategoryID.Valid {
		tx.CategoryID = row.CategoryID.UUID
	}
	if row.GroupID.Valid {
		groupID := row.GroupID.UUID
		tx.GroupID = &groupID
	}
	return tx
}
