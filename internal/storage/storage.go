package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Users        sqlconfig.IUserTable
	Categories   sqlconfig.ICategoryTable
	Groups       sqlconfig.IGroupTable
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		Users:        sqlconfig.NewUsersTable(db),
		Categories:   sqlconfig.NewCategoriesTable(db),
		Groups:       sqlconfig.NewGroupsTable(db),
		Transactions: sqlconfig.NewTransactionsTable(db),
	}
}
