package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// AnalyticsService reduces fetched ledger batches into financial summaries.
// It is stateless: every method fetches one immutable batch, reduces it in
// memory, and returns; storage errors propagate to the caller unchanged.
type AnalyticsService struct {
	storage *storage.Storage
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	return &AnalyticsService{storage: store}
}

// Overview computes total income, total expense, and balance for one user
// within a period. An empty filtered set yields exact zeros, not an error.
func (s *AnalyticsService) Overview(ctx context.Context, userID uuid.UUID, period Period) (*OverviewSummary, error) {
	period = period.normalize()

	entries, err := s.storage.Transactions.Ledger(ctx, &sqlconfig.LedgerFilter{
		UserID:    &userID,
		StartDate: period.Start,
		EndDate:   period.End,
	})
	if err != nil {
		return nil, err
	}

	income, expense := sumByType(entries)
	return &OverviewSummary{
		Balance:      income.Sub(expense),
		TotalIncome:  income,
		TotalExpense: expense,
		PeriodStart:  period.Start,
		PeriodEnd:    period.End,
	}, nil
}

// ByCategory groups one user's transactions by category, sorted by total
// descending with a name tie-break. The percentage denominator is the total
// expense over the same filtered set: the breakdown answers "where did my
// money go". Income categories are still listed against that expense
// denominator; when there are no expenses every percentage is 0.
func (s *AnalyticsService) ByCategory(ctx context.Context, userID uuid.UUID, period Period) ([]CategorySummary, error) {
	period = period.normalize()

	entries, err := s.storage.Transactions.Ledger(ctx, &sqlconfig.LedgerFilter{
		UserID:    &userID,
		StartDate: period.Start,
		EndDate:   period.End,
	})
	if err != nil {
		return nil, err
	}

	_, totalExpense := sumByType(entries)

	totals := make(map[string]*CategorySummary)
	for _, entry := range entries {
		label := categoryLabel(entry)
		row, ok := totals[label]
		if !ok {
			row = &CategorySummary{
				CategoryName: label,
				CategoryType: entry.CategoryType,
			}
			totals[label] = row
		}
		row.TotalAmount = row.TotalAmount.Add(entry.Amount)
	}

	summaries := make([]CategorySummary, 0, len(totals))
	for _, row := range totals {
		if !totalExpense.IsZero() {
			row.Percentage = percentage(row.TotalAmount, totalExpense)
		}
		summaries = append(summaries, *row)
	}
	sortCategorySummaries(summaries)
	return summaries, nil
}

// ByDate groups one user's transactions into day, ISO-week (Monday start),
// or calendar-month buckets, ascending. Buckets without transactions are not
// synthesized; callers needing a dense series fill gaps themselves. An
// unsupported granularity is a contract violation and fails before fetching.
func (s *AnalyticsService) ByDate(ctx context.Context, userID uuid.UUID, period Period, granularity Granularity) ([]DailySummary, error) {
	switch granularity {
	case GranularityDay, GranularityWeek, GranularityMonth:
	default:
		return nil, ErrInvalidGranularity
	}

	period = period.normalize()

	entries, err := s.storage.Transactions.Ledger(ctx, &sqlconfig.LedgerFilter{
		UserID:    &userID,
		StartDate: period.Start,
		EndDate:   period.End,
	})
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*DailySummary)
	for _, entry := range entries {
		start := bucketStart(entry.Date, granularity)
		bucket, ok := buckets[start]
		if !ok {
			bucket = &DailySummary{BucketDate: start}
			buckets[start] = bucket
		}
		switch entry.Type {
		case sqlconfig.TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(entry.Amount)
		case sqlconfig.TransactionTypeExpense:
			bucket.Expense = bucket.Expense.Add(entry.Amount)
		}
	}

	summaries := make([]DailySummary, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Balance = bucket.Income.Sub(bucket.Expense)
		summaries = append(summaries, *bucket)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].BucketDate.Before(summaries[j].BucketDate)
	})
	return summaries, nil
}

// GroupAnalytics computes group totals, a category breakdown, and per-member
// contributions. An empty filtered set is not "group not found": the member
// count is still resolved and all monetary fields come back zeroed. The
// caller is responsible for verifying the group exists and the requester may
// see it.
//
// Both group-level percentage denominators fall back to 1.0 when zero. The
// fallback yields 0% rows instead of NaN/Inf and is observable behavior; do
// not replace it with a different constant.
func (s *AnalyticsService) GroupAnalytics(ctx context.Context, groupID uuid.UUID, period Period, categoryName string) (*GroupAnalytics, error) {
	period = period.normalize()

	filter := &sqlconfig.LedgerFilter{
		GroupID:   &groupID,
		StartDate: period.Start,
		EndDate:   period.End,
	}
	if categoryName != "" {
		filter.CategoryName = &categoryName
	}

	entries, err := s.storage.Transactions.Ledger(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Membership size is independent of who actually transacted in the
	// period: members with no activity still count.
	memberCount, err := s.storage.Groups.MemberCount(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return &GroupAnalytics{
			MemberCount:         memberCount,
			PeriodStart:         period.Start,
			PeriodEnd:           period.End,
			CategoryBreakdown:   []CategorySummary{},
			MemberContributions: []MemberContribution{},
		}, nil
	}

	totalIncome, totalExpense := sumByType(entries)

	categoryTotals := make(map[string]*CategorySummary)
	memberTotals := make(map[uuid.UUID]*MemberContribution)
	for _, entry := range entries {
		label := categoryLabel(entry)
		categoryRow, ok := categoryTotals[label]
		if !ok {
			categoryRow = &CategorySummary{
				CategoryName: label,
				CategoryType: entry.CategoryType,
			}
			categoryTotals[label] = categoryRow
		}
		categoryRow.TotalAmount = categoryRow.TotalAmount.Add(entry.Amount)

		memberRow, ok := memberTotals[entry.UserID]
		if !ok {
			memberRow = &MemberContribution{
				UserID:    entry.UserID,
				FirstName: entry.UserFirstName,
				LastName:  entry.UserLastName,
			}
			memberTotals[entry.UserID] = memberRow
		}
		memberRow.TotalContributed = memberRow.TotalContributed.Add(entry.Amount)
	}

	expenseDenominator := totalExpense
	if expenseDenominator.IsZero() {
		expenseDenominator = decimal.NewFromInt(1)
	}
	breakdown := make([]CategorySummary, 0, len(categoryTotals))
	for _, row := range categoryTotals {
		row.Percentage = percentage(row.TotalAmount, expenseDenominator)
		breakdown = append(breakdown, *row)
	}
	sortCategorySummaries(breakdown)

	totalContributed := decimal.Zero
	for _, row := range memberTotals {
		totalContributed = totalContributed.Add(row.TotalContributed)
	}
	contributionDenominator := totalContributed
	if contributionDenominator.IsZero() {
		contributionDenominator = decimal.NewFromInt(1)
	}
	contributions := make([]MemberContribution, 0, len(memberTotals))
	for _, row := range memberTotals {
		row.Percentage = percentage(row.TotalContributed, contributionDenominator)
		contributions = append(contributions, *row)
	}
	sortMemberContributions(contributions)

	return &GroupAnalytics{
		TotalIncome:         totalIncome,
		TotalExpense:        totalExpense,
		Balance:             totalIncome.Sub(totalExpense),
		MemberCount:         memberCount,
		PeriodStart:         period.Start,
		PeriodEnd:           period.End,
		CategoryBreakdown:   breakdown,
		MemberContributions: contributions,
	}, nil
}

// sumByType partitions a batch into income and expense totals. Both default
// to zero so an empty batch still yields well-defined sums.
func sumByType(entries []*sqlconfig.LedgerEntry) (income, expense decimal.Decimal) {
	for _, entry := range entries {
		switch entry.Type {
		case sqlconfig.TransactionTypeIncome:
			income = income.Add(entry.Amount)
		case sqlconfig.TransactionTypeExpense:
			expense = expense.Add(entry.Amount)
		}
	}
	return income, expense
}

func categoryLabel(entry *sqlconfig.LedgerEntry) string {
	if entry.CategoryName == "" {
		return UncategorizedLabel
	}
	return entry.CategoryName
}

// percentage returns amount/denominator as a percent, rounded to one decimal
// place. Callers guarantee the denominator is nonzero.
func percentage(amount, denominator decimal.Decimal) float64 {
	ratio, _ := amount.Mul(decimal.NewFromInt(100)).Div(denominator).Float64()
	return math.Round(ratio*10) / 10
}

// bucketStart truncates a timestamp to its bucket's first instant in UTC.
func bucketStart(t time.Time, granularity Granularity) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch granularity {
	case GranularityWeek:
		// ISO weeks start on Monday.
		return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// Equal totals order by name so repeated runs produce identical output.
func sortCategorySummaries(summaries []CategorySummary) {
	sort.Slice(summaries, func(i, j int) bool {
		cmp := summaries[i].TotalAmount.Cmp(summaries[j].TotalAmount)
		if cmp != 0 {
			return cmp > 0
		}
		return summaries[i].CategoryName < summaries[j].CategoryName
	})
}

func sortMemberContributions(contributions []MemberContribution) {
	sort.Slice(contributions, func(i, j int) bool {
		cmp := contributions[i].TotalContributed.Cmp(contributions[j].TotalContributed)
		if cmp != 0 {
			return cmp > 0
		}
		if contributions[i].LastName != contributions[j].LastName {
			return contributions[i].LastName < contributions[j].LastName
		}
		return contributions[i].FirstName < contributions[j].FirstName
	})
}
