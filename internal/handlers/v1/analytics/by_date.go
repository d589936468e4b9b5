package analytics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/handlers/v1/request"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ByDateInput is the Huma input for time-bucketed analytics.
type ByDateInput struct {
	StartDate   string `query:"startDate" doc:"Inclusive start date, YYYY-MM-DD, defaults to the beginning of history"`
	EndDate     string `query:"endDate" doc:"Inclusive end date, YYYY-MM-DD, defaults to today"`
	Granularity string `query:"granularity" enum:"day,week,month" doc:"Bucket size, defaults to day"`
}

// DateBucket is one chronological bucket of income, expense, and balance.
type DateBucket struct {
	BucketDate string `json:"bucketDate" doc:"Bucket start date, YYYY-MM-DD"`
	Income     string `json:"income" doc:"Decimal income total for the bucket"`
	Expense    string `json:"expense" doc:"Decimal expense total for the bucket"`
	Balance    string `json:"balance" doc:"Income minus expense for the bucket"`
}

// ByDateResponseBody is the response body for time-bucketed analytics.
type ByDateResponseBody struct {
	Buckets []DateBucket `json:"buckets" doc:"Chronological buckets, days with no activity omitted"`
}

// ByDateOutput is the Huma output for time-bucketed analytics.
type ByDateOutput struct {
	Body ByDateResponseBody
}

// dateSummarizer is the interface for computing time-bucketed analytics.
type dateSummarizer interface {
	ByDate(ctx context.Context, userID uuid.UUID, period service.Period, granularity service.Granularity) ([]service.DailySummary, error)
}

// ByDateHandler handles GET /v1/analytics/by-date.
type ByDateHandler struct {
	AnalyticsService dateSummarizer
}

// NewByDateHandler creates a new ByDateHandler.
func NewByDateHandler(svc dateSummarizer) *ByDateHandler {
	return &ByDateHandler{AnalyticsService: svc}
}

// Register registers the by-date endpoint with the Huma API.
func (h *ByDateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-by-date",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/by-date",
		Summary:     "Analytics by date",
		Description: "Returns per-bucket income, expense, and balance at day, week, or month granularity.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *ByDateHandler) handle(ctx context.Context, input *ByDateInput) (*ByDateOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	period, err := request.ParsePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	granularity := service.GranularityDay
	if input.Granularity != "" {
		granularity = service.Granularity(input.Granularity)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("byDateMs")
	}
	buckets, err := h.AnalyticsService.ByDate(ctx, userID, period, granularity)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidGranularity) {
			return nil, huma.NewError(http.StatusBadRequest, "granularity must be day, week, or month")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute date buckets", err)
	}

	if logData != nil {
		logData.AddData("bucketCount", len(buckets))
	}

	resp := ByDateResponseBody{Buckets: make([]DateBucket, len(buckets))}
	for i, bucket := range buckets {
		resp.Buckets[i] = DateBucket{
			BucketDate: bucket.BucketDate.Format(time.DateOnly),
			Income:     bucket.Income.StringFixed(2),
			Expense:    bucket.Expense.StringFixed(2),
			Balance:    bucket.Balance.StringFixed(2),
		}
	}

	return &ByDateOutput{Body: resp}, nil
}
