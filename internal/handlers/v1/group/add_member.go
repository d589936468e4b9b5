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

// AddMemberBody is the request body for adding a group member.
type AddMemberBody struct {
	UserID string `json:"userID" required:"true" doc:"UUID of the user to add"`
}

// AddMemberInput is the Huma input for adding a group member.
type AddMemberInput struct {
	ID   string `path:"id" doc:"Group UUID"`
	Body AddMemberBody
}

// AddMemberOutput is the Huma output for adding a group member.
type AddMemberOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// memberAdder is the interface for adding group members.
type memberAdder interface {
	AddMember(ctx context.Context, requesterID, groupID, userID uuid.UUID) error
}

// AddMemberHandler handles POST /v1/group/{id}/member.
type AddMemberHandler struct {
	GroupService memberAdder
}

// NewAddMemberHandler creates a new AddMemberHandler.
func NewAddMemberHandler(svc memberAdder) *AddMemberHandler {
	return &AddMemberHandler{GroupService: svc}
}

// Register registers the add member endpoint with the Huma API.
func (h *AddMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-group-member",
		Method:      http.MethodPost,
		Path:        "/v1/group/{id}/member",
		Summary:     "Add group member",
		Description: "Adds a user to a group. Owner only. Adding an existing member is a no-op.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *AddMemberHandler) handle(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	requesterID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	groupID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid group id", err)
	}
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	if err := h.GroupService.AddMember(ctx, requesterID, groupID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "group or user not found")
		case errors.Is(err, service.ErrForbidden):
			return nil, huma.NewError(http.StatusForbidden, "only the owner can add members")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to add member", err)
	}

	return &AddMemberOutput{Status: http.StatusCreated}, nil
}
