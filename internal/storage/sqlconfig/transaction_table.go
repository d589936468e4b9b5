package sqlconfig

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	db Queryer
}

func NewTransactionsTable(db Queryer) *TransactionsTable {
	return &TransactionsTable{db: db}
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	const query = `
		INSERT INTO transactions
			(user_id, category_id, group_id, transaction_name, transaction_type, amount, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	var id uuid.UUID
	err := t.db.QueryRowContext(ctx, query,
		create.UserID,
		create.CategoryID,
		create.GroupID,
		create.TransactionName,
		string(create.Type),
		create.Amount,
		transactionDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter, newest first. The query
// fetches limit+1 rows so callers can detect a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := `
		SELECT id, user_id, category_id, group_id, transaction_name,
		       transaction_type, amount, transaction_date, created_at
		FROM transactions`

	var conditions []string
	var args []interface{}
	if filter != nil {
		if filter.UserID != nil {
			args = append(args, *filter.UserID)
			conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
		}
		if filter.CategoryID != nil {
			args = append(args, *filter.CategoryID)
			conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
		}
		if filter.MaxCreationTime != nil {
			args = append(args, *filter.MaxCreationTime)
			conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
		}
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"
	if filter != nil && filter.Limit > 0 {
		args = append(args, filter.Limit+1)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter != nil && filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*Transaction
	for rows.Next() {
		var tx Transaction
		var txType string
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.CategoryID,
			&tx.GroupID,
			&tx.TransactionName,
			&txType,
			&tx.Amount,
			&tx.TransactionDate,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		tx.Type = TransactionType(txType)
		transactions = append(transactions, &tx)
	}
	return transactions, rows.Err()
}

// Ledger returns the analytics projection for one user or one group. The
// joins resolve category and user display fields here so the analytics
// engine never touches other tables. Rows come back in chronological order.
func (t *TransactionsTable) Ledger(ctx context.Context, filter *LedgerFilter) ([]*LedgerEntry, error) {
	query := `
		SELECT t.id, t.user_id, t.group_id, t.category_id,
		       COALESCE(c.name, ''), COALESCE(c.category_type, ''),
		       u.first_name, u.last_name,
		       t.transaction_name, t.transaction_type, t.amount, t.transaction_date
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		JOIN users u ON u.id = t.user_id`

	var conditions []string
	var args []interface{}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("t.user_id = $%d", len(args)))
	}
	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		conditions = append(conditions, fmt.Sprintf("t.group_id = $%d", len(args)))
	}
	args = append(args, filter.StartDate)
	conditions = append(conditions, fmt.Sprintf("t.transaction_date >= $%d", len(args)))
	args = append(args, filter.EndDate)
	conditions = append(conditions, fmt.Sprintf("t.transaction_date <= $%d", len(args)))
	if filter.CategoryName != nil {
		args = append(args, *filter.CategoryName)
		conditions = append(conditions, fmt.Sprintf("c.name = $%d", len(args)))
	}
	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY t.transaction_date ASC, t.id ASC"

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*LedgerEntry
	for rows.Next() {
		var entry LedgerEntry
		var categoryType, txType string
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.GroupID,
			&entry.CategoryID,
			&entry.CategoryName,
			&categoryType,
			&entry.UserFirstName,
			&entry.UserLastName,
			&entry.TransactionName,
			&txType,
			&entry.Amount,
			&entry.Date,
		); err != nil {
			return nil, err
		}
		entry.CategoryType = TransactionType(categoryType)
		entry.Type = TransactionType(txType)
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
