package transaction

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) (uuid.UUID, error) {
	args := m.Called(ctx, action)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func authedContext(userID uuid.UUID) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	statusErr, ok := err.(huma.StatusError)
	assert.True(t, ok, "expected a huma status error, got %v", err)
	assert.Equal(t, status, statusErr.GetStatus())
}

func TestCreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	txDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			create.UserID == userID &&
			create.CategoryID == categoryID &&
			create.GroupID == nil &&
			create.Amount.Equal(decimal.RequireFromString("12.50")) &&
			create.TransactionName == "Coffee" &&
			create.TransactionDate.Equal(txDate)
	})).Return(txID, nil)

	handler := NewCreateTransactionHandler(mockOp)
	output, err := handler.handle(authedContext(userID), &CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID:      categoryID.String(),
			TransactionName: "Coffee",
			Type:            "expense",
			Amount:          "12.50",
			TransactionDate: txDate.Format(time.RFC3339),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, output.Status)
	assert.Equal(t, txID.String(), output.Body.ID)
	mockOp.AssertExpectations(t)
}

func TestCreateTransaction_Unauthenticated(t *testing.T) {
	handler := NewCreateTransactionHandler(new(mockProcessor))

	output, err := handler.handle(context.Background(), &CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID:      uuid.Must(uuid.NewV4()).String(),
			TransactionName: "Coffee",
			Type:            "expense",
			Amount:          "12.50",
		},
	})

	assert.Nil(t, output)
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	handler := NewCreateTransactionHandler(new(mockProcessor))

	output, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID:      uuid.Must(uuid.NewV4()).String(),
			TransactionName: "Coffee",
			Type:            "expense",
			Amount:          "twelve",
		},
	})

	assert.Nil(t, output)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestCreateTransaction_UnknownCategoryIsBadRequest(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(uuid.Nil, actions.ErrCategoryNotFound)

	handler := NewCreateTransactionHandler(mockOp)
	output, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID:      uuid.Must(uuid.NewV4()).String(),
			TransactionName: "Coffee",
			Type:            "expense",
			Amount:          "12.50",
		},
	})

	assert.Nil(t, output)
	assertStatus(t, err, http.StatusBadRequest)
	mockOp.AssertExpectations(t)
}

func TestCreateTransaction_GroupForwarded(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok && create.GroupID != nil && *create.GroupID == groupID
	})).Return(txID, nil)

	handler := NewCreateTransactionHandler(mockOp)
	output, err := handler.handle(authedContext(userID), &CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID:      uuid.Must(uuid.NewV4()).String(),
			GroupID:         groupID.String(),
			TransactionName: "Shared dinner",
			Type:            "expense",
			Amount:          "48.00",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, txID.String(), output.Body.ID)
	mockOp.AssertExpectations(t)
}
