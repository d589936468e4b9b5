package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/handlers/v1/request"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ByCategoryInput is the Huma input for the category breakdown.
type ByCategoryInput struct {
	StartDate string `query:"startDate" doc:"Inclusive start date, YYYY-MM-DD, defaults to the beginning of history"`
	EndDate   string `query:"endDate" doc:"Inclusive end date, YYYY-MM-DD, defaults to today"`
}

// CategorySummary is one row of the category breakdown.
type CategorySummary struct {
	CategoryName string  `json:"categoryName" doc:"Category name, Uncategorized when the category was deleted"`
	CategoryType string  `json:"categoryType" doc:"Category type, income or expense"`
	TotalAmount  string  `json:"totalAmount" doc:"Decimal total for the category"`
	Percentage   float64 `json:"percentage" doc:"Share of total expense, one decimal place"`
}

// ByCategoryResponseBody is the response body for the category breakdown.
type ByCategoryResponseBody struct {
	Categories []CategorySummary `json:"categories" doc:"Per-category totals, largest first"`
}

// ByCategoryOutput is the Huma output for the category breakdown.
type ByCategoryOutput struct {
	Body ByCategoryResponseBody
}

// categorySummarizer is the interface for computing the category breakdown.
type categorySummarizer interface {
	ByCategory(ctx context.Context, userID uuid.UUID, period service.Period) ([]service.CategorySummary, error)
}

// ByCategoryHandler handles GET /v1/analytics/by-category.
type ByCategoryHandler struct {
	AnalyticsService categorySummarizer
}

// NewByCategoryHandler creates a new ByCategoryHandler.
func NewByCategoryHandler(svc categorySummarizer) *ByCategoryHandler {
	return &ByCategoryHandler{AnalyticsService: svc}
}

// Register registers the by-category endpoint with the Huma API.
func (h *ByCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-by-category",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/by-category",
		Summary:     "Analytics by category",
		Description: "Returns per-category totals and their share of total expense within a period.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *ByCategoryHandler) handle(ctx context.Context, input *ByCategoryInput) (*ByCategoryOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	period, err := request.ParsePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("byCategoryMs")
	}
	categories, err := h.AnalyticsService.ByCategory(ctx, userID, period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute category breakdown", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	resp := ByCategoryResponseBody{Categories: make([]CategorySummary, len(categories))}
	for i, row := range categories {
		resp.Categories[i] = CategorySummary{
			CategoryName: row.CategoryName,
			CategoryType: string(row.CategoryType),
			TotalAmount:  row.TotalAmount.StringFixed(2),
			Percentage:   row.Percentage,
		}
	}

	return &ByCategoryOutput{Body: resp}, nil
}
