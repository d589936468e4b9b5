package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// UncategorizedLabel stands in for a category reference that no longer
// resolves. A dangling reference must not abort the rest of the batch.
const UncategorizedLabel = "Uncategorized"

// Granularity selects the time bucket for by-date aggregation.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Period is an inclusive date range. Zero ends are filled in by normalize so
// downstream arithmetic never branches on "no filter": an unset start becomes
// the epoch floor and an unset end becomes now.
type Period struct {
	Start time.Time
	End   time.Time
}

var epochFloor = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

func (p Period) normalize() Period {
	if p.Start.IsZero() {
		p.Start = epochFloor
	}
	if p.End.IsZero() {
		p.End = time.Now().UTC()
	}
	return p
}

// OverviewSummary is the totals view for one user within a period.
type OverviewSummary struct {
	Balance      decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// CategorySummary is one row of a category breakdown. Percentage is of total
// expense over the same filtered set; see the denominator notes on
// AnalyticsService for the group-level variant.
type CategorySummary struct {
	CategoryName string
	CategoryType sqlconfig.TransactionType
	TotalAmount  decimal.Decimal
	Percentage   float64
}

// DailySummary is one chronological bucket of income, expense, and balance.
type DailySummary struct {
	BucketDate time.Time
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Balance    decimal.Decimal
}

// MemberContribution is one member's share of a group's transaction volume
// (income and expense combined, unsigned) within the filtered period.
type MemberContribution struct {
	UserID           uuid.UUID
	FirstName        string
	LastName         string
	TotalContributed decimal.Decimal
	Percentage       float64
}

// GroupAnalytics is the full group-level summary.
type GroupAnalytics struct {
	TotalIncome         decimal.Decimal
	TotalExpense        decimal.Decimal
	Balance             decimal.Decimal
	MemberCount         int
	PeriodStart         time.Time
	PeriodEnd           time.Time
	CategoryBreakdown   []CategorySummary
	MemberContributions []MemberContribution
}
