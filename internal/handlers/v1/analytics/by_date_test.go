package analytics

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/service"
)

// mockDateSummarizer is a mock for dateSummarizer.
type mockDateSummarizer struct {
	mock.Mock
}

func (m *mockDateSummarizer) ByDate(ctx context.Context, userID uuid.UUID, period service.Period, granularity service.Granularity) ([]service.DailySummary, error) {
	args := m.Called(ctx, userID, period, granularity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DailySummary), args.Error(1)
}

// authedContext returns a context carrying the given user identity.
func authedContext(userID uuid.UUID) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

// assertStatus asserts err is a Huma error with the given HTTP status.
func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	if assert.Error(t, err) {
		statusErr, ok := err.(huma.StatusError)
		if assert.True(t, ok, "expected a huma.StatusError, got %T", err) {
			assert.Equal(t, status, statusErr.GetStatus())
		}
	}
}

func TestByDateHandler_Unauthenticated(t *testing.T) {
	handler := NewByDateHandler(new(mockDateSummarizer))

	_, err := handler.handle(context.Background(), &ByDateInput{})

	assertStatus(t, err, http.StatusUnauthorized)
}

func TestByDateHandler_DefaultsToDayGranularity(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDateSummarizer)
	mockSvc.On("ByDate", mock.Anything, userID, mock.Anything, service.GranularityDay).
		Return([]service.DailySummary{}, nil)

	handler := NewByDateHandler(mockSvc)
	output, err := handler.handle(authedContext(userID), &ByDateInput{})

	assert.NoError(t, err)
	assert.Empty(t, output.Body.Buckets)
	mockSvc.AssertExpectations(t)
}

func TestByDateHandler_InvalidGranularity(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDateSummarizer)
	mockSvc.On("ByDate", mock.Anything, userID, mock.Anything, service.Granularity("hourly")).
		Return(nil, service.ErrInvalidGranularity)

	handler := NewByDateHandler(mockSvc)
	_, err := handler.handle(authedContext(userID), &ByDateInput{Granularity: "hourly"})

	assertStatus(t, err, http.StatusBadRequest)
}

func TestByDateHandler_MapsBuckets(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockDateSummarizer)
	mockSvc.On("ByDate", mock.Anything, userID, mock.MatchedBy(func(p service.Period) bool {
		return p.Start.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	}), service.GranularityMonth).Return([]service.DailySummary{
		{
			BucketDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			Income:     decimal.RequireFromString("1500"),
			Expense:    decimal.RequireFromString("900.25"),
			Balance:    decimal.RequireFromString("599.75"),
		},
		{
			BucketDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			Income:     decimal.Zero,
			Expense:    decimal.RequireFromString("50"),
			Balance:    decimal.RequireFromString("-50"),
		},
	}, nil)

	handler := NewByDateHandler(mockSvc)
	output, err := handler.handle(authedContext(userID), &ByDateInput{
		StartDate:   "2025-06-01",
		EndDate:     "2025-07-31",
		Granularity: "month",
	})

	assert.NoError(t, err)
	if assert.Len(t, output.Body.Buckets, 2) {
		assert.Equal(t, "2025-06-01", output.Body.Buckets[0].BucketDate)
		assert.Equal(t, "1500.00", output.Body.Buckets[0].Income)
		assert.Equal(t, "900.25", output.Body.Buckets[0].Expense)
		assert.Equal(t, "599.75", output.Body.Buckets[0].Balance)
		assert.Equal(t, "2025-07-01", output.Body.Buckets[1].BucketDate)
		assert.Equal(t, "-50.00", output.Body.Buckets[1].Balance)
	}
	mockSvc.AssertExpectations(t)
}
