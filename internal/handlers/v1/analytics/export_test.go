package analytics

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

// mockCSVExporter is a mock for csvExporter.
type mockCSVExporter struct {
	mock.Mock
}

func (m *mockCSVExporter) WriteCSV(ctx context.Context, w io.Writer, userID uuid.UUID, period service.Period, categoryName string) error {
	args := m.Called(ctx, w, userID, period, categoryName)
	return args.Error(0)
}

func TestExportHandler_Unauthenticated(t *testing.T) {
	handler := NewExportHandler(new(mockCSVExporter))

	_, err := handler.handle(context.Background(), &ExportInput{})

	assertStatus(t, err, http.StatusUnauthorized)
}

func TestExportHandler_ReturnsCSVAttachment(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCSVExporter)
	mockSvc.On("WriteCSV", mock.Anything, mock.Anything, userID, mock.Anything, "Food").
		Run(func(args mock.Arguments) {
			w := args.Get(1).(io.Writer)
			_, _ = w.Write([]byte("id,date,type,category,name,amount\n"))
		}).
		Return(nil)

	handler := NewExportHandler(mockSvc)
	output, err := handler.handle(authedContext(userID), &ExportInput{Category: "Food"})

	assert.NoError(t, err)
	assert.Equal(t, "text/csv", output.ContentType)
	assert.Equal(t, `attachment; filename="transactions.csv"`, output.Disposition)
	assert.Equal(t, "id,date,type,category,name,amount\n", string(output.Body))
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_InvalidEndDate(t *testing.T) {
	handler := NewExportHandler(new(mockCSVExporter))

	_, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &ExportInput{
		EndDate: "31-12-2025",
	})

	assertStatus(t, err, http.StatusBadRequest)
}

func TestExportHandler_ExportErrorIsInternal(t *testing.T) {
	mockSvc := new(mockCSVExporter)
	mockSvc.On("WriteCSV", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "").
		Return(assert.AnError)

	handler := NewExportHandler(mockSvc)
	_, err := handler.handle(authedContext(uuid.Must(uuid.NewV4())), &ExportInput{})

	assertStatus(t, err, http.StatusInternalServerError)
}
