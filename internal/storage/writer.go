package storage

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Writer bundles table gateways bound to one transaction. Operator actions
// perform their statements through a Writer so multi-statement writes commit
// or roll back together.
type Writer struct {
	tx           txHandle
	Categories   sqlconfig.ICategoryTable
	Groups       sqlconfig.IGroupTable
	Transactions sqlconfig.ITransactionTable
}

type txHandle interface {
	sqlconfig.Queryer
	Commit() error
	Rollback() error
}

// Write begins a transaction and returns a Writer over it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Writer{
		tx:           tx,
		Categories:   sqlconfig.NewCategoriesTable(tx),
		Groups:       sqlconfig.NewGroupsTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}, nil
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
