package group

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListGroupsInput is the Huma input for listing groups.
type ListGroupsInput struct{}

// ListGroupsResponseBody is the response body for listing groups.
type ListGroupsResponseBody struct {
	Groups []Group `json:"groups" doc:"Groups the authenticated user owns or belongs to"`
}

// ListGroupsOutput is the Huma output for listing groups.
type ListGroupsOutput struct {
	Body ListGroupsResponseBody
}

// groupLister is the interface for listing a user's groups.
type groupLister interface {
	ListGroups(ctx context.Context, userID uuid.UUID) ([]service.Group, error)
}

// ListGroupsHandler handles GET /v1/groups.
type ListGroupsHandler struct {
	GroupService groupLister
}

// NewListGroupsHandler creates a new ListGroupsHandler.
func NewListGroupsHandler(svc groupLister) *ListGroupsHandler {
	return &ListGroupsHandler{GroupService: svc}
}

// Register registers the list groups endpoint with the Huma API.
func (h *ListGroupsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-groups",
		Method:      http.MethodGet,
		Path:        "/v1/groups",
		Summary:     "List groups",
		Description: "Returns every group the authenticated user owns or belongs to.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *ListGroupsHandler) handle(ctx context.Context, _ *ListGroupsInput) (*ListGroupsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listGroupsMs")
	}
	groups, err := h.GroupService.ListGroups(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list groups", err)
	}

	if logData != nil {
		logData.AddData("groupCount", len(groups))
	}

	resp := ListGroupsResponseBody{Groups: make([]Group, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = Group{
			ID:          g.ID.String(),
			Name:        g.Name,
			Description: g.Description,
			OwnerID:     g.OwnerID.String(),
		}
	}

	return &ListGroupsOutput{Body: resp}, nil
}
