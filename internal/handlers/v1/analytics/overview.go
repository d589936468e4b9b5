package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/handlers/v1/request"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// OverviewInput is the Huma input for the analytics overview.
type OverviewInput struct {
	StartDate string `query:"startDate" doc:"Inclusive start date, YYYY-MM-DD, defaults to the beginning of history"`
	EndDate   string `query:"endDate" doc:"Inclusive end date, YYYY-MM-DD, defaults to today"`
}

// OverviewResponseBody is the response body for the analytics overview.
type OverviewResponseBody struct {
	Balance      string `json:"balance" doc:"Income minus expense"`
	TotalIncome  string `json:"totalIncome" doc:"Decimal income total"`
	TotalExpense string `json:"totalExpense" doc:"Decimal expense total"`
	PeriodStart  string `json:"periodStart" doc:"RFC3339 resolved period start"`
	PeriodEnd    string `json:"periodEnd" doc:"RFC3339 resolved period end"`
}

// OverviewOutput is the Huma output for the analytics overview.
type OverviewOutput struct {
	Body OverviewResponseBody
}

// overviewSummarizer is the interface for computing the overview.
type overviewSummarizer interface {
	Overview(ctx context.Context, userID uuid.UUID, period service.Period) (*service.OverviewSummary, error)
}

// OverviewHandler handles GET /v1/analytics/overview.
type OverviewHandler struct {
	AnalyticsService overviewSummarizer
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(svc overviewSummarizer) *OverviewHandler {
	return &OverviewHandler{AnalyticsService: svc}
}

// Register registers the overview endpoint with the Huma API.
func (h *OverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-overview",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/overview",
		Summary:     "Analytics overview",
		Description: "Returns total income, total expense, and balance for the authenticated user within a period.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *OverviewHandler) handle(ctx context.Context, input *OverviewInput) (*OverviewOutput, error) {
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
		stopTimer = logData.AddTiming("overviewMs")
	}
	summary, err := h.AnalyticsService.Overview(ctx, userID, period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute overview", err)
	}

	return &OverviewOutput{Body: OverviewResponseBody{
		Balance:      summary.Balance.StringFixed(2),
		TotalIncome:  summary.TotalIncome.StringFixed(2),
		TotalExpense: summary.TotalExpense.StringFixed(2),
		PeriodStart:  summary.PeriodStart.Format(time.RFC3339),
		PeriodEnd:    summary.PeriodEnd.Format(time.RFC3339),
	}}, nil
}
