package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

func newTestWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockICategoryTable, *sqlconfig.MockIGroupTable, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockCategories := sqlconfig.NewMockICategoryTable(t)
	mockGroups := sqlconfig.NewMockIGroupTable(t)
	mockTransactions := sqlconfig.NewMockITransactionTable(t)
	writer := &storage.Writer{
		Categories:   mockCategories,
		Groups:       mockGroups,
		Transactions: mockTransactions,
	}
	return writer, mockCategories, mockGroups, mockTransactions
}

func TestCreateTransaction_Success(t *testing.T) {
	writer, mockCategories, _, mockTransactions := newTestWriter(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	expectedID := uuid.Must(uuid.NewV4())
	txDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID, Name: "Food"}, nil)
	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == userID &&
			c.CategoryID == categoryID &&
			!c.GroupID.Valid &&
			c.Amount.Equal(decimal.RequireFromString("42.50")) &&
			c.TransactionName == "Groceries" &&
			c.TransactionDate.Equal(txDate)
	})).Return(expectedID, nil)

	action := &CreateTransaction{
		UserID:          userID,
		CategoryID:      categoryID,
		TransactionName: "Groceries",
		Type:            sqlconfig.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("42.50"),
		TransactionDate: txDate,
	}

	id, err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	writer, _, _, _ := newTestWriter(t)

	action := &CreateTransaction{
		UserID:     uuid.Must(uuid.NewV4()),
		CategoryID: uuid.Must(uuid.NewV4()),
		Type:       sqlconfig.TransactionType("transfer"),
		Amount:     decimal.RequireFromString("10.00"),
	}

	id, err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrInvalidType)
	assert.Equal(t, uuid.Nil, id)
}

func TestCreateTransaction_NegativeAmount(t *testing.T) {
	writer, _, _, _ := newTestWriter(t)

	action := &CreateTransaction{
		UserID:     uuid.Must(uuid.NewV4()),
		CategoryID: uuid.Must(uuid.NewV4()),
		Type:       sqlconfig.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("-5.00"),
	}

	id, err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, uuid.Nil, id)
}

func TestCreateTransaction_ForeignCategoryRejected(t *testing.T) {
	writer, mockCategories, _, _ := newTestWriter(t)

	categoryID := uuid.Must(uuid.NewV4())
	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: uuid.Must(uuid.NewV4())}, nil)

	action := &CreateTransaction{
		UserID:     uuid.Must(uuid.NewV4()),
		CategoryID: categoryID,
		Type:       sqlconfig.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("10.00"),
	}

	id, err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Equal(t, uuid.Nil, id)
}

func TestCreateTransaction_GroupRequiresMembership(t *testing.T) {
	writer, mockCategories, mockGroups, _ := newTestWriter(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())

	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID}, nil)
	mockGroups.EXPECT().IsMember(mock.Anything, groupID, userID).Return(false, nil)

	action := &CreateTransaction{
		UserID:     userID,
		CategoryID: categoryID,
		GroupID:    &groupID,
		Type:       sqlconfig.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("10.00"),
	}

	id, err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrGroupNotFound)
	assert.Equal(t, uuid.Nil, id)
}

func TestCreateTransaction_GroupMemberSucceeds(t *testing.T) {
	writer, mockCategories, mockGroups, mockTransactions := newTestWriter(t)

	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())
	expectedID := uuid.Must(uuid.NewV4())

	mockCategories.EXPECT().FindByID(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, UserID: userID}, nil)
	mockGroups.EXPECT().IsMember(mock.Anything, groupID, userID).Return(true, nil)
	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.GroupID.Valid && c.GroupID.UUID == groupID
	})).Return(expectedID, nil)

	action := &CreateTransaction{
		UserID:     userID,
		CategoryID: categoryID,
		GroupID:    &groupID,
		Type:       sqlconfig.TransactionTypeExpense,
		Amount:     decimal.RequireFromString("10.00"),
	}

	id, err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}
