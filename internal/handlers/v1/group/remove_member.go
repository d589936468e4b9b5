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

// RemoveMemberInput is the Huma input for removing a group member.
type RemoveMemberInput struct {
	ID     string `path:"id" doc:"Group UUID"`
	UserID string `path:"userID" doc:"UUID of the member to remove"`
}

// RemoveMemberOutput is the Huma output for removing a group member.
type RemoveMemberOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// memberRemover is the interface for removing group members.
type memberRemover interface {
	RemoveMember(ctx context.Context, requesterID, groupID, userID uuid.UUID) error
}

// RemoveMemberHandler handles DELETE /v1/group/{id}/member/{userID}.
type RemoveMemberHandler struct {
	GroupService memberRemover
}

// NewRemoveMemberHandler creates a new RemoveMemberHandler.
func NewRemoveMemberHandler(svc memberRemover) *RemoveMemberHandler {
	return &RemoveMemberHandler{GroupService: svc}
}

// Register registers the remove member endpoint with the Huma API.
func (h *RemoveMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "remove-group-member",
		Method:      http.MethodDelete,
		Path:        "/v1/group/{id}/member/{userID}",
		Summary:     "Remove group member",
		Description: "Removes a member from a group. Owner only. The owner cannot be removed.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *RemoveMemberHandler) handle(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	requesterID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	groupID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid group id", err)
	}
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	if err := h.GroupService.RemoveMember(ctx, requesterID, groupID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "group not found")
		case errors.Is(err, service.ErrForbidden):
			return nil, huma.NewError(http.StatusForbidden, "not allowed")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to remove member", err)
	}

	return &RemoveMemberOutput{Status: http.StatusOK}, nil
}
