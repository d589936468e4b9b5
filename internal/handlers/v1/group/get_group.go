package group

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// GetGroupInput is the Huma input for fetching a group.
type GetGroupInput struct {
	ID string `path:"id" doc:"Group UUID"`
}

// GetGroupResponseBody is the response body for fetching a group.
type GetGroupResponseBody struct {
	Group
	Members []Member `json:"members" doc:"Resolved group membership, owner included"`
}

// GetGroupOutput is the Huma output for fetching a group.
type GetGroupOutput struct {
	Body GetGroupResponseBody
}

// groupGetter is the interface for fetching a group with its members.
type groupGetter interface {
	GetGroup(ctx context.Context, requesterID, groupID uuid.UUID) (*service.GroupWithMembers, error)
}

// GetGroupHandler handles GET /v1/group/{id}.
type GetGroupHandler struct {
	GroupService groupGetter
}

// NewGetGroupHandler creates a new GetGroupHandler.
func NewGetGroupHandler(svc groupGetter) *GetGroupHandler {
	return &GetGroupHandler{GroupService: svc}
}

// Register registers the get group endpoint with the Huma API.
func (h *GetGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-group",
		Method:      http.MethodGet,
		Path:        "/v1/group/{id}",
		Summary:     "Get group",
		Description: "Returns a group and its members. Visible to the owner and members only.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *GetGroupHandler) handle(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	groupID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid group id", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getGroupMs")
	}
	result, err := h.GroupService.GetGroup(ctx, userID, groupID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "group not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get group", err)
	}

	resp := GetGroupResponseBody{
		Group: Group{
			ID:          result.ID.String(),
			Name:        result.Name,
			Description: result.Description,
			OwnerID:     result.OwnerID.String(),
		},
		Members: make([]Member, len(result.Members)),
	}
	for i, m := range result.Members {
		resp.Members[i] = Member{
			UserID:    m.UserID.String(),
			FirstName: m.FirstName,
			LastName:  m.LastName,
		}
	}

	return &GetGroupOutput{Body: resp}, nil
}
