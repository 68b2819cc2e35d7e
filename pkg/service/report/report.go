// Package report implements the aggregation engine behind the
// dashboard: the financial summary, the category breakdown and the
// monthly evolution chart. Every amount is converted to the viewing
// user's display currency before it is accumulated.
package report

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/repository"
	"github.com/lumeo-app/backend/pkg/service/display"
)

// chartPalette supplies the category colors when a category carries
// none of its own. Indexed by insertion order, wrapping around.
var chartPalette = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#FF6384", "#C9CBCF", "#4BC0C0", "#FF6384",
}

// DefaultEvolutionMonths is the chart window served when the caller
// does not ask for a specific number of months.
const DefaultEvolutionMonths = 2

// Service computes the user-facing aggregations.
type Service struct {
	store     repository.Store
	converter exchange.AmountConverter
	logger    *slog.Logger
	now       func() time.Time
}

// NewService builds the aggregation service.
func NewService(store repository.Store, converter exchange.AmountConverter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     store,
		converter: converter,
		logger:    logger,
		now:       time.Now,
	}
}

// FinancialSummary returns the all-time and current-month totals for a
// user, converted to their display currency. A user without a
// configured currency is summarized in the fallback currency.
func (s *Service) FinancialSummary(ctx context.Context, userID uint) (*dto.FinancialSummary, error) {
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		user = nil
	}
	disp := display.ForUser(ctx, s.store.Currencies(), user)

	all, err := s.store.Transactions().ListByUserOrRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	income, expense := s.accumulate(ctx, userID, disp.Code, all)

	from, to := monthBounds(s.now())
	monthly, err := s.store.Transactions().ListByUserOrRecipientBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	monthIncome, monthExpense := s.accumulate(ctx, userID, disp.Code, monthly)

	return &dto.FinancialSummary{
		TotalIncome:    income.Round(2),
		TotalExpense:   expense.Round(2),
		Balance:        income.Sub(expense).Round(2),
		CurrencyCode:   disp.Code,
		CurrencySymbol: disp.Symbol,
		SymbolPosition: disp.SymbolPosition,
		MonthlyIncome:  monthIncome.Round(2),
		MonthlyExpense: monthExpense.Round(2),
		MonthlySavings: monthIncome.Sub(monthExpense).Round(2),
	}, nil
}

// ExpensesByCategory returns the current-month expense totals grouped
// by predefined category, in first-appearance order. Transactions on
// custom categories are left out of the chart.
func (s *Service) ExpensesByCategory(ctx context.Context, userID uint) ([]dto.CategoryExpense, error) {
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		user = nil
	}
	disp := display.ForUser(ctx, s.store.Currencies(), user)

	from, to := monthBounds(s.now())
	txs, err := s.store.Transactions().ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CategoryExpense, 0)
	index := make(map[uint]int)
	for _, t := range txs {
		if t.TypeID == nil || *t.TypeID != domain.TypeExpense || t.CategoryID == nil {
			continue
		}
		cat, err := s.store.Categories().Get(ctx, *t.CategoryID)
		if err != nil || cat.IsCustom {
			continue
		}
		amount, ok := s.convertedAmount(ctx, userID, disp.Code, t)
		if !ok {
			continue
		}
		i, seen := index[cat.ID]
		if !seen {
			color := cat.Color
			if color == "" {
				color = chartPalette[len(result)%len(chartPalette)]
			}
			result = append(result, dto.CategoryExpense{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Color:        color,
			})
			i = len(result) - 1
			index[cat.ID] = i
		}
		result[i].TotalExpense = result[i].TotalExpense.Add(decimal.NewFromFloat(amount))
	}
	for i := range result {
		result[i].TotalExpense = result[i].TotalExpense.Round(2)
	}
	return result, nil
}

// MonthlyEvolution returns income and expense totals for the last
// months calendar months, oldest first and ending with the current
// month. Months outside 1..60 fall back to the default window.
func (s *Service) MonthlyEvolution(ctx context.Context, userID uint, months int) ([]dto.MonthlyEvolution, error) {
	if months < 1 || months > 60 {
		months = DefaultEvolutionMonths
	}
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		user = nil
	}
	disp := display.ForUser(ctx, s.store.Currencies(), user)

	now := s.now()
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	result := make([]dto.MonthlyEvolution, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := base.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)
		from := domain.NewDate(start.Year(), start.Month(), 1)
		to := domain.NewDate(end.Year(), end.Month(), end.Day())

		txs, err := s.store.Transactions().ListByUserBetween(ctx, userID, from, to)
		if err != nil {
			return nil, err
		}
		income, expense := s.accumulate(ctx, userID, disp.Code, txs)

		result = append(result, dto.MonthlyEvolution{
			Year:         start.Year(),
			Month:        int(start.Month()),
			MonthName:    dto.MonthName(start.Month()),
			MonthAbbrev:  dto.MonthAbbrev(start.Month()),
			TotalIncome:  income.Round(2),
			TotalExpense: expense.Round(2),
			Savings:      income.Sub(expense).Round(2),
		})
	}
	return result, nil
}

// accumulate sums the converted absolute amounts of txs into income and
// expense buckets by transaction type.
func (s *Service) accumulate(ctx context.Context, userID uint, displayISO string, txs []*domain.Transaction) (income, expense decimal.Decimal) {
	for _, t := range txs {
		if t.TypeID == nil {
			continue
		}
		amount, ok := s.convertedAmount(ctx, userID, displayISO, t)
		if !ok {
			continue
		}
		d := decimal.NewFromFloat(amount)
		switch *t.TypeID {
		case domain.TypeIncome:
			income = income.Add(d)
		case domain.TypeExpense:
			expense = expense.Add(d)
		}
	}
	return income, expense
}

// convertedAmount picks the side of the transaction that belongs to
// userID, converts it to the display currency and returns its absolute
// value. Amounts with no known source currency pass through unchanged.
func (s *Service) convertedAmount(ctx context.Context, userID uint, displayISO string, t *domain.Transaction) (float64, bool) {
	raw := t.Amount
	if t.RecipientID != nil && *t.RecipientID == userID {
		raw = t.RecipientAmount
	}
	if raw == nil {
		return 0, false
	}
	amount := math.Abs(*raw)

	iso, ok := display.ISOForID(ctx, s.store.Currencies(), t.OriginalCurrencyID)
	if !ok {
		return amount, true
	}
	return s.converter.ConvertOrOriginal(ctx, amount, iso, displayISO), true
}

// monthBounds returns the first and last day of t's calendar month.
func monthBounds(t time.Time) (domain.Date, domain.Date) {
	last := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	return domain.NewDate(t.Year(), t.Month(), 1), domain.NewDate(last.Year(), last.Month(), last.Day())
}
