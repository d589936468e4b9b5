package category

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/service"
)

// UpdateCategoryBody is the request body for updating a category.
type UpdateCategoryBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Category name, unique per user"`
	Description string `json:"description" doc:"Optional description"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	UpdateCategory(ctx context.Context, userID, id uuid.UUID, update service.CategoryUpdate) error
}

// UpdateCategoryHandler handles PUT /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/category/{id}",
		Summary:     "Update category",
		Description: "Updates the name and description of a category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}

	update := service.CategoryUpdate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	}

	if err := h.CategoryService.UpdateCategory(ctx, userID, id, update); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "category not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update category", err)
	}

	return &UpdateCategoryOutput{Status: http.StatusOK}, nil
}
