package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Category name, unique per user"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Category type"`
	Description string `json:"description" doc:"Optional description"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int      `json:"status" doc:"HTTP status"`
	Body   Category `json:"body"`
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, category service.Category) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create category",
		Description: "Creates a new category for the authenticated user.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	category := service.Category{
		UserID:      userID,
		Name:        input.Body.Name,
		Type:        sqlconfig.TransactionType(input.Body.Type),
		Description: input.Body.Description,
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCategoryMs")
	}
	id, err := h.CategoryService.CreateCategory(ctx, category)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body: Category{
			ID:          id.String(),
			Name:        category.Name,
			Type:        string(category.Type),
			Description: category.Description,
		},
	}, nil
}
