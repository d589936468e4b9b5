package group

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// mockGroupAccessChecker is a mock for groupAccessChecker.
type mockGroupAccessChecker struct {
	mock.Mock
}

func (m *mockGroupAccessChecker) RequireAccess(ctx context.Context, requesterID, groupID uuid.UUID) error {
	args := m.Called(ctx, requesterID, groupID)
	return args.Error(0)
}

// mockGroupAnalyzer is a mock for groupAnalyzer.
type mockGroupAnalyzer struct {
	mock.Mock
}

func (m *mockGroupAnalyzer) GroupAnalytics(ctx context.Context, groupID uuid.UUID, period service.Period, categoryName string) (*service.GroupAnalytics, error) {
	args := m.Called(ctx, groupID, period, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GroupAnalytics), args.Error(1)
}

func TestGroupAnalyticsHandler_Unauthenticated(t *testing.T) {
	handler := NewGroupAnalyticsHandler(new(mockGroupAccessChecker), new(mockGroupAnalyzer))

	_, err := handler.handle(context.Background(), &GroupAnalyticsInput{
		ID: uuid.Must(uuid.NewV4()).String(),
	})

	assertStatus(t, err, http.StatusUnauthorized)
}

func TestGroupAnalyticsHandler_MissingGroupIsNotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())

	mockGroups := new(mockGroupAccessChecker)
	mockGroups.On("RequireAccess", mock.Anything, userID, groupID).
		Return(service.ErrNotFound)
	mockAnalytics := new(mockGroupAnalyzer)

	handler := NewGroupAnalyticsHandler(mockGroups, mockAnalytics)
	_, err := handler.handle(authedContext(userID), &GroupAnalyticsInput{ID: groupID.String()})

	assertStatus(t, err, http.StatusNotFound)
	mockAnalytics.AssertNotCalled(t, "GroupAnalytics")
	mockGroups.AssertExpectations(t)
}

func TestGroupAnalyticsHandler_InvalidGroupID(t *testing.T) {
	handler := NewGroupAnalyticsHandler(new(mockGroupAccessChecker), new(mockGroupAnalyzer))

	_, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &GroupAnalyticsInput{
		ID: "not-a-uuid",
	})

	assertStatus(t, err, http.StatusBadRequest)
}

func TestGroupAnalyticsHandler_InvalidStartDate(t *testing.T) {
	handler := NewGroupAnalyticsHandler(new(mockGroupAccessChecker), new(mockGroupAnalyzer))

	_, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &GroupAnalyticsInput{
		ID:        uuid.Must(uuid.NewV4()).String(),
		StartDate: "06/01/2025",
	})

	assertStatus(t, err, http.StatusBadRequest)
}

func TestGroupAnalyticsHandler_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())
	memberID := uuid.Must(uuid.NewV4())
	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)

	mockGroups := new(mockGroupAccessChecker)
	mockGroups.On("RequireAccess", mock.Anything, userID, groupID).Return(nil)

	mockAnalytics := new(mockGroupAnalyzer)
	mockAnalytics.On("GroupAnalytics", mock.Anything, groupID, mock.MatchedBy(func(p service.Period) bool {
		return p.Start.Equal(periodStart)
	}), "Food").Return(&service.GroupAnalytics{
		TotalIncome:  decimal.RequireFromString("0"),
		TotalExpense: decimal.RequireFromString("120.5"),
		Balance:      decimal.RequireFromString("-120.5"),
		MemberCount:  2,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		CategoryBreakdown: []service.CategorySummary{
			{
				CategoryName: "Food",
				CategoryType: sqlconfig.TransactionTypeExpense,
				TotalAmount:  decimal.RequireFromString("120.5"),
				Percentage:   100.0,
			},
		},
		MemberContributions: []service.MemberContribution{
			{
				UserID:           memberID,
				FirstName:        "Grace",
				LastName:         "Hopper",
				TotalContributed: decimal.RequireFromString("120.5"),
				Percentage:       100.0,
			},
		},
	}, nil)

	handler := NewGroupAnalyticsHandler(mockGroups, mockAnalytics)
	output, err := handler.handle(authedContext(userID), &GroupAnalyticsInput{
		ID:        groupID.String(),
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
		Category:  "Food",
	})

	assert.NoError(t, err)
	assert.Equal(t, "0.00", output.Body.TotalIncome)
	assert.Equal(t, "120.50", output.Body.TotalExpense)
	assert.Equal(t, "-120.50", output.Body.Balance)
	assert.Equal(t, 2, output.Body.MemberCount)
	assert.Equal(t, periodStart.Format(time.RFC3339), output.Body.PeriodStart)
	if assert.Len(t, output.Body.CategoryBreakdown, 1) {
		assert.Equal(t, "Food", output.Body.CategoryBreakdown[0].CategoryName)
		assert.Equal(t, "expense", output.Body.CategoryBreakdown[0].CategoryType)
		assert.Equal(t, "120.50", output.Body.CategoryBreakdown[0].TotalAmount)
		assert.Equal(t, 100.0, output.Body.CategoryBreakdown[0].Percentage)
	}
	if assert.Len(t, output.Body.MemberContributions, 1) {
		assert.Equal(t, memberID.String(), output.Body.MemberContributions[0].UserID)
		assert.Equal(t, "Hopper", output.Body.MemberContributions[0].LastName)
		assert.Equal(t, "120.50", output.Body.MemberContributions[0].TotalContributed)
	}
	mockGroups.AssertExpectations(t)
	mockAnalytics.AssertExpectations(t)
}
