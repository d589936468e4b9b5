package group

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

// GroupAnalyticsInput is the Huma input for group analytics.
type GroupAnalyticsInput struct {
	ID        string `path:"id" doc:"Group UUID"`
	StartDate string `query:"startDate" doc:"Inclusive start date, YYYY-MM-DD, defaults to the beginning of history"`
	EndDate   string `query:"endDate" doc:"Inclusive end date, YYYY-MM-DD, defaults to today"`
	Category  string `query:"category" doc:"Restrict the summary to one category name"`
}

// GroupCategorySummary is one row of the group category breakdown.
type GroupCategorySummary struct {
	CategoryName string  `json:"categoryName" doc:"Category name, Uncategorized when the category was deleted"`
	CategoryType string  `json:"categoryType" doc:"Category type, income or expense"`
	TotalAmount  string  `json:"totalAmount" doc:"Decimal total for the category"`
	Percentage   float64 `json:"percentage" doc:"Share of total group expense, one decimal place"`
}

// GroupMemberContribution is one member's share of group activity.
type GroupMemberContribution struct {
	UserID           string  `json:"userID" doc:"User UUID"`
	FirstName        string  `json:"firstName" doc:"First name"`
	LastName         string  `json:"lastName" doc:"Last name"`
	TotalContributed string  `json:"totalContributed" doc:"Decimal transaction volume, income and expense combined"`
	Percentage       float64 `json:"percentage" doc:"Share of total group volume, one decimal place"`
}

// GroupAnalyticsResponseBody is the response body for group analytics.
type GroupAnalyticsResponseBody struct {
	TotalIncome         string                    `json:"totalIncome" doc:"Decimal income total"`
	TotalExpense        string                    `json:"totalExpense" doc:"Decimal expense total"`
	Balance             string                    `json:"balance" doc:"Income minus expense"`
	MemberCount         int                       `json:"memberCount" doc:"Current member count, owner included"`
	PeriodStart         string                    `json:"periodStart" doc:"RFC3339 resolved period start"`
	PeriodEnd           string                    `json:"periodEnd" doc:"RFC3339 resolved period end"`
	CategoryBreakdown   []GroupCategorySummary    `json:"categoryBreakdown" doc:"Per-category totals, largest first"`
	MemberContributions []GroupMemberContribution `json:"memberContributions" doc:"Per-member volume, largest first"`
}

// GroupAnalyticsOutput is the Huma output for group analytics.
type GroupAnalyticsOutput struct {
	Body GroupAnalyticsResponseBody
}

// groupAccessChecker gates analytics behind group visibility.
type groupAccessChecker interface {
	RequireAccess(ctx context.Context, requesterID, groupID uuid.UUID) error
}

// groupAnalyzer is the interface for computing group analytics.
type groupAnalyzer interface {
	GroupAnalytics(ctx context.Context, groupID uuid.UUID, period service.Period, categoryName string) (*service.GroupAnalytics, error)
}

// GroupAnalyticsHandler handles GET /v1/group/{id}/analytics.
type GroupAnalyticsHandler struct {
	GroupService     groupAccessChecker
	AnalyticsService groupAnalyzer
}

// NewGroupAnalyticsHandler creates a new GroupAnalyticsHandler.
func NewGroupAnalyticsHandler(groups groupAccessChecker, analytics groupAnalyzer) *GroupAnalyticsHandler {
	return &GroupAnalyticsHandler{GroupService: groups, AnalyticsService: analytics}
}

// Register registers the group analytics endpoint with the Huma API.
func (h *GroupAnalyticsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "group-analytics",
		Method:      http.MethodGet,
		Path:        "/v1/group/{id}/analytics",
		Summary:     "Group analytics",
		Description: "Returns group totals, the category breakdown, and per-member contributions for a period.",
		Tags:        []string{"Groups", "Analytics"},
	}, h.handle)
}

func (h *GroupAnalyticsHandler) handle(ctx context.Context, input *GroupAnalyticsInput) (*GroupAnalyticsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}

	groupID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid group id", err)
	}

	period, err := request.ParsePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	// Membership is checked here so the aggregation itself can assume the
	// group exists. Missing and forbidden are indistinguishable to callers.
	if err := h.GroupService.RequireAccess(ctx, userID, groupID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "group not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to check group access", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("groupAnalyticsMs")
	}
	result, err := h.AnalyticsService.GroupAnalytics(ctx, groupID, period, input.Category)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute group analytics", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(result.CategoryBreakdown))
		logData.AddData("memberCount", result.MemberCount)
	}

	resp := GroupAnalyticsResponseBody{
		TotalIncome:         result.TotalIncome.StringFixed(2),
		TotalExpense:        result.TotalExpense.StringFixed(2),
		Balance:             result.Balance.StringFixed(2),
		MemberCount:         result.MemberCount,
		PeriodStart:         result.PeriodStart.Format(time.RFC3339),
		PeriodEnd:           result.PeriodEnd.Format(time.RFC3339),
		CategoryBreakdown:   make([]GroupCategorySummary, len(result.CategoryBreakdown)),
		MemberContributions: make([]GroupMemberContribution, len(result.MemberContributions)),
	}
	for i, row := range result.CategoryBreakdown {
		resp.CategoryBreakdown[i] = GroupCategorySummary{
			CategoryName: row.CategoryName,
			CategoryType: string(row.CategoryType),
			TotalAmount:  row.TotalAmount.StringFixed(2),
			Percentage:   row.Percentage,
		}
	}
	for i, row := range result.MemberContributions {
		resp.MemberContributions[i] = GroupMemberContribution{
			UserID:           row.UserID.String(),
			FirstName:        row.FirstName,
			LastName:         row.LastName,
			TotalContributed: row.TotalContributed.StringFixed(2),
			Percentage:       row.Percentage,
		}
	}

	return &GroupAnalyticsOutput{Body: resp}, nil
}
