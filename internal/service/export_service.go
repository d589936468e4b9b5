package service

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

var exportHeader = []string{"id", "date", "type", "category", "name", "amount"}

// ExportService serializes a user's filtered transactions as CSV.
type ExportService struct {
	storage *storage.Storage
}

// NewExportService creates a new ExportService.
func NewExportService(store *storage.Storage) *ExportService {
	return &ExportService{storage: store}
}

// WriteCSV streams the user's transactions in the period to w, one row per
// transaction in chronological order. Category names arrive resolved from
// the ledger; dangling references export under the "Uncategorized" sentinel.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, userID uuid.UUID, period Period, categoryName string) error {
	period = period.normalize()

	filter := &sqlconfig.LedgerFilter{
		UserID:    &userID,
		StartDate: period.Start,
		EndDate:   period.End,
	}
	if categoryName != "" {
		filter.CategoryName = &categoryName
	}

	entries, err := s.storage.Transactions.Ledger(ctx, filter)
	if err != nil {
		return err
	}

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(exportHeader); err != nil {
		return err
	}
	for _, entry := range entries {
		record := []string{
			entry.ID.String(),
			entry.Date.Format(time.RFC3339),
			string(entry.Type),
			categoryLabel(entry),
			entry.TransactionName,
			entry.Amount.StringFixed(2),
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
