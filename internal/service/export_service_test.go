package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

func newExportTestService(t *testing.T) (*ExportService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := NewExportService(store)
	return svc, mockTable
}

func TestWriteCSV_HeaderOnlyForEmptySet(t *testing.T) {
	svc, mockTable := newExportTestService(t)

	mockTable.EXPECT().Ledger(mock.Anything, mock.Anything).
		Return([]*sqlconfig.LedgerEntry{}, nil)

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, uuid.Must(uuid.NewV4()), Period{}, "")

	assert.NoError(t, err)
	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, []string{"id", "date", "type", "category", "name", "amount"}, records[0])
}

func TestWriteCSV_RowsInLedgerOrder(t *testing.T) {
	svc, mockTable := newExportTestService(t)

	userID := uuid.Must(uuid.NewV4())
	entry := ledgerEntry(userID, "Food", sqlconfig.TransactionTypeExpense, "12.50", time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	entry.TransactionName = "Lunch"
	dangling := ledgerEntry(userID, "", sqlconfig.TransactionTypeExpense, "8.00", time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	dangling.TransactionName = "Mystery"

	mockTable.EXPECT().Ledger(mock.Anything, mock.Anything).
		Return([]*sqlconfig.LedgerEntry{entry, dangling}, nil)

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, userID, Period{}, "")

	assert.NoError(t, err)
	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	assert.Equal(t, entry.ID.String(), records[1][0])
	assert.Equal(t, "2025-06-01T10:00:00Z", records[1][1])
	assert.Equal(t, "expense", records[1][2])
	assert.Equal(t, "Food", records[1][3])
	assert.Equal(t, "Lunch", records[1][4])
	assert.Equal(t, "12.50", records[1][5])

	assert.Equal(t, UncategorizedLabel, records[2][3])
}

func TestWriteCSV_CategoryFilterIsForwarded(t *testing.T) {
	svc, mockTable := newExportTestService(t)

	mockTable.EXPECT().Ledger(mock.Anything, mock.MatchedBy(func(f *sqlconfig.LedgerFilter) bool {
		return f.CategoryName != nil && *f.CategoryName == "Food"
	})).Return([]*sqlconfig.LedgerEntry{}, nil)

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, uuid.Must(uuid.NewV4()), Period{}, "Food")

	assert.NoError(t, err)
}
