package request

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

const dateLayout = "2006-01-02"

// ParsePeriod converts optional startDate and endDate query values into a
// service period. Either side may be empty; the service fills in defaults.
func ParsePeriod(startDate, endDate string) (service.Period, error) {
	var period service.Period

	if startDate != "" {
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return period, huma.NewError(http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD", err)
		}
		period.Start = start
	}

	if endDate != "" {
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return period, huma.NewError(http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD", err)
		}
		// Inclusive end date: extend to the last instant of the day.
		period.End = end.Add(24*time.Hour - time.Nanosecond)
	}

	return period, nil
}
