package group

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// actionProcessor queues an action and waits for the worker's result.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) (uuid.UUID, error)
}

// CreateGroupBody is the request body for creating a group.
type CreateGroupBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Group name"`
	Description string `json:"description" doc:"Optional description"`
}

// CreateGroupInput is the Huma input for creating a group.
type CreateGroupInput struct {
	Body CreateGroupBody
}

// CreateGroupResponseBody is the response body for creating a group.
type CreateGroupResponseBody struct {
	ID string `json:"id" doc:"UUID of the created group"`
}

// CreateGroupOutput is the Huma output for creating a group.
type CreateGroupOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   CreateGroupResponseBody
}

// CreateGroupHandler handles POST /v1/group.
type CreateGroupHandler struct {
	Operator actionProcessor
}

// NewCreateGroupHandler creates a new CreateGroupHandler.
func NewCreateGroupHandler(op actionProcessor) *CreateGroupHandler {
	return &CreateGroupHandler{Operator: op}
}

// Register registers the create group endpoint with the Huma API.
func (h *CreateGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-group",
		Method:      http.MethodPost,
		Path:        "/v1/group",
		Summary:     "Create group",
		Description: "Creates a new group owned by the authenticated user. The owner is added as a member in the same write.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *CreateGroupHandler) handle(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	action := &actions.CreateGroup{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		OwnerID:     userID,
	}

	id, err := h.Operator.Process(ctx, action)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create group", err)
	}

	return &CreateGroupOutput{
		Status: http.StatusCreated,
		Body:   CreateGroupResponseBody{ID: id.String()},
	}, nil
}
