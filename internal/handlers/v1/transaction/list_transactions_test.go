package transaction

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// mockTransactionLister is a mock for transactionLister.
type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, userID, cursor)
	var txs []service.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]service.Transaction)
	}
	var next *service.TransactionCursor
	if args.Get(1) != nil {
		next = args.Get(1).(*service.TransactionCursor)
	}
	return txs, next, args.Error(2)
}

func TestListTransactions_Unauthenticated(t *testing.T) {
	handler := NewListTransactionsHandler(new(mockTransactionLister))

	output, err := handler.handle(context.Background(), &ListTransactionsInput{})

	assert.Nil(t, output)
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestListTransactions_MapsServiceResults(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	serviceTx := service.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		UserID:          userID,
		CategoryID:      uuid.Must(uuid.NewV4()),
		GroupID:         &groupID,
		TransactionName: "Groceries",
		Type:            sqlconfig.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("42.50"),
		TransactionDate: now,
		CreatedAt:       now,
	}
	nextCursor := &service.TransactionCursor{Position: 20, Limit: 20, MaxCreationTime: now}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{serviceTx}, nextCursor, nil)

	handler := NewListTransactionsHandler(mockSvc)
	output, err := handler.handle(authedContext(userID), &ListTransactionsInput{})

	assert.NoError(t, err)
	assert.Len(t, output.Body.Transactions, 1)

	tx := output.Body.Transactions[0]
	assert.Equal(t, serviceTx.ID.String(), tx.ID)
	assert.Equal(t, serviceTx.CategoryID.String(), tx.CategoryID)
	assert.Equal(t, groupID.String(), tx.GroupID)
	assert.Equal(t, "expense", tx.Type)
	assert.Equal(t, "42.5", tx.Amount)
	assert.Equal(t, now.Format(time.RFC3339), tx.TransactionDate)

	assert.NotNil(t, output.Body.NextCursor)
	assert.Equal(t, 20, output.Body.NextCursor.Position)
	assert.Equal(t, now.Format(time.RFC3339), output.Body.NextCursor.MaxCreationTime)
	mockSvc.AssertExpectations(t)
}

func TestListTransactions_UncategorizedHasEmptyCategoryID(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          userID,
			TransactionName: "Old purchase",
			Type:            sqlconfig.TransactionTypeExpense,
			Amount:          decimal.RequireFromString("5.00"),
			TransactionDate: now,
			CreatedAt:       now,
		}}, nil, nil)

	handler := NewListTransactionsHandler(mockSvc)
	output, err := handler.handle(authedContext(userID), &ListTransactionsInput{})

	assert.NoError(t, err)
	assert.Len(t, output.Body.Transactions, 1)
	assert.Empty(t, output.Body.Transactions[0].CategoryID)
	assert.Nil(t, output.Body.NextCursor)
}

func TestListTransactions_InvalidCursorTime(t *testing.T) {
	handler := NewListTransactionsHandler(new(mockTransactionLister))

	output, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &ListTransactionsInput{
		Body: ListTransactionsBody{
			Cursor: &ListTransactionsCursor{
				Position:        0,
				Limit:           20,
				MaxCreationTime: "yesterday",
			},
		},
	})

	assert.Nil(t, output)
	assertStatus(t, err, http.StatusBadRequest)
}
