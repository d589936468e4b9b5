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

// UpdateGroupBody is the request body for updating a group.
type UpdateGroupBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Group name"`
	Description string `json:"description" doc:"Optional description"`
}

// UpdateGroupInput is the Huma input for updating a group.
type UpdateGroupInput struct {
	ID   string `path:"id" doc:"Group UUID"`
	Body UpdateGroupBody
}

// UpdateGroupOutput is the Huma output for updating a group.
type UpdateGroupOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// groupUpdater is the interface for updating groups.
type groupUpdater interface {
	UpdateGroup(ctx context.Context, requesterID, groupID uuid.UUID, update service.GroupUpdate) error
}

// UpdateGroupHandler handles PUT /v1/group/{id}.
type UpdateGroupHandler struct {
	GroupService groupUpdater
}

// NewUpdateGroupHandler creates a new UpdateGroupHandler.
func NewUpdateGroupHandler(svc groupUpdater) *UpdateGroupHandler {
	return &UpdateGroupHandler{GroupService: svc}
}

// Register registers the update group endpoint with the Huma API.
func (h *UpdateGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-group",
		Method:      http.MethodPut,
		Path:        "/v1/group/{id}",
		Summary:     "Update group",
		Description: "Updates the name and description of a group. Owner only.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *UpdateGroupHandler) handle(ctx context.Context, input *UpdateGroupInput) (*UpdateGroupOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	groupID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid group id", err)
	}

	update := service.GroupUpdate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	}

	if err := h.GroupService.UpdateGroup(ctx, userID, groupID, update); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "group not found")
		case errors.Is(err, service.ErrForbidden):
			return nil, huma.NewError(http.StatusForbidden, "only the owner can update a group")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update group", err)
	}

	return &UpdateGroupOutput{Status: http.StatusOK}, nil
}
