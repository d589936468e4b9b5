package group

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/service"
)

// DeleteGroupInput is the Huma input for deleting a group.
type DeleteGroupInput struct {
	ID string `path:"id" doc:"Group UUID"`
}

// DeleteGroupOutput is the Huma output for deleting a group.
type DeleteGroupOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// groupDeleter is the interface for deleting groups.
type groupDeleter interface {
	DeleteGroup(ctx context.Context, requesterID, groupID uuid.UUID) error
}

// DeleteGroupHandler handles DELETE /v1/group/{id}.
type DeleteGroupHandler struct {
	GroupService groupDeleter
}

// NewDeleteGroupHandler creates a new DeleteGroupHandler.
func NewDeleteGroupHandler(svc groupDeleter) *DeleteGroupHandler {
	return &DeleteGroupHandler{GroupService: svc}
}

// Register registers the delete group endpoint with the Huma API.
func (h *DeleteGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-group",
		Method:      http.MethodDelete,
		Path:        "/v1/group/{id}",
		Summary:     "Delete group",
		Description: "Deletes a group and its memberships. Owner only. Transactions survive as personal history.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *DeleteGroupHandler) handle(ctx context.Context, input *DeleteGroupInput) (*DeleteGroupOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	groupID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid group id", err)
	}

	if err := h.GroupService.DeleteGroup(ctx, userID, groupID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "group not found")
		case errors.Is(err, service.ErrForbidden):
			return nil, huma.NewError(http.StatusForbidden, "only the owner can delete a group")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete group", err)
	}

	return &DeleteGroupOutput{Status: http.StatusOK}, nil
}
