package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// actionProcessor queues an action and waits for the worker's result.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) (uuid.UUID, error)
}

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	CategoryID      string `json:"categoryID" required:"true" doc:"Category UUID"`
	GroupID         string `json:"groupID" doc:"Group UUID, omit for a personal transaction"`
	TransactionName string `json:"transactionName" required:"true" doc:"Name of the transaction"`
	Type            string `json:"type" required:"true" enum:"income,expense" doc:"Transaction type"`
	Amount          string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   CreateTransactionResponseBody
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction, personal or attributed to a group.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var groupID *uuid.UUID
	if input.Body.GroupID != "" {
		parsed, parseErr := uuid.FromString(input.Body.GroupID)
		if parseErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid groupID", parseErr)
		}
		groupID = &parsed
	}

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(time.RFC3339, input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	} else {
		transactionDate = time.Now()
	}

	action := &actions.CreateTransaction{
		UserID:          userID,
		CategoryID:      categoryID,
		GroupID:         groupID,
		TransactionName: input.Body.TransactionName,
		Type:            sqlconfig.TransactionType(input.Body.Type),
		Amount:          amount,
		TransactionDate: transactionDate,
	}

	id, err := h.Operator.Process(ctx, action)
	if err != nil {
		switch {
		case errors.Is(err, actions.ErrCategoryNotFound):
			return nil, huma.NewError(http.StatusBadRequest, "category not found")
		case errors.Is(err, actions.ErrGroupNotFound):
			return nil, huma.NewError(http.StatusBadRequest, "group not found or not a member")
		case errors.Is(err, actions.ErrNegativeAmount), errors.Is(err, actions.ErrInvalidType):
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{ID: id.String()},
	}, nil
}
