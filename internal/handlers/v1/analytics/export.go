package analytics

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/handlers/v1/request"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ExportInput is the Huma input for the CSV export.
type ExportInput struct {
	StartDate string `query:"startDate" doc:"Inclusive start date, YYYY-MM-DD, defaults to the beginning of history"`
	EndDate   string `query:"endDate" doc:"Inclusive end date, YYYY-MM-DD, defaults to today"`
	Category  string `query:"category" doc:"Restrict the export to one category name"`
}

// ExportOutput is the Huma output for the CSV export. The body is raw CSV.
type ExportOutput struct {
	ContentType string `header:"Content-Type"`
	Disposition string `header:"Content-Disposition"`
	Body        []byte
}

// csvExporter is the interface for writing a transaction export.
type csvExporter interface {
	WriteCSV(ctx context.Context, w io.Writer, userID uuid.UUID, period service.Period, categoryName string) error
}

// ExportHandler handles GET /v1/analytics/export.
type ExportHandler struct {
	ExportService csvExporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc csvExporter) *ExportHandler {
	return &ExportHandler{ExportService: svc}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analytics-export",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/export",
		Summary:     "Export transactions",
		Description: "Returns the authenticated user's filtered transactions as a CSV file.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *ExportHandler) handle(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
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
		stopTimer = logData.AddTiming("exportMs")
	}
	var buf bytes.Buffer
	err = h.ExportService.WriteCSV(ctx, &buf, userID, period, input.Category)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to export transactions", err)
	}

	if logData != nil {
		logData.AddData("exportBytes", buf.Len())
	}

	return &ExportOutput{
		ContentType: "text/csv",
		Disposition: `attachment; filename="transactions.csv"`,
		Body:        buf.Bytes(),
	}, nil
}
