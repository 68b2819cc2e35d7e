package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/testutils"
)

func ptrU(v uint) *uint       { return &v }
func ptrF(v float64) *float64 { return &v }

func fixedNow() time.Time {
	return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func seedStore() *testutils.FakeStore {
	store := testutils.NewFakeStore()
	store.CurrencyRows = []*domain.Currency{
		{ID: 1, ISOCode: "EUR", Symbol: "€", SymbolPosition: domain.SymbolAfter},
		{ID: 2, ISOCode: "USD", Symbol: "$", SymbolPosition: domain.SymbolBefore},
	}
	store.UserRows = []*domain.User{
		{ID: 1, Username: "ana", CurrencyID: ptrU(1)},
		{ID: 2, Username: "luis", CurrencyID: ptrU(2)},
	}
	return store
}

func newService(store *testutils.FakeStore, rates map[string]float64) *Service {
	svc := NewService(store, &testutils.FixedRateConverter{Rates: rates}, nil)
	svc.now = fixedNow
	return svc
}

func TestFinancialSummary_Totals(t *testing.T) {
	store := seedStore()
	march := domain.NewDate(2026, time.March, 3)
	january := domain.NewDate(2026, time.January, 20)
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(100), Date: march, TypeID: ptrU(domain.TypeIncome), OriginalCurrencyID: ptrU(1)},
		{ID: 2, UserID: 1, Amount: ptrF(-40), Date: march, TypeID: ptrU(domain.TypeExpense), OriginalCurrencyID: ptrU(1)},
		{ID: 3, UserID: 1, Amount: ptrF(10), Date: january, TypeID: ptrU(domain.TypeExpense), OriginalCurrencyID: ptrU(1)},
	}
	svc := newService(store, nil)

	summary, err := svc.FinancialSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "100", summary.TotalIncome.String())
	assert.Equal(t, "50", summary.TotalExpense.String())
	assert.Equal(t, "50", summary.Balance.String())
	assert.Equal(t, "100", summary.MonthlyIncome.String())
	assert.Equal(t, "40", summary.MonthlyExpense.String())
	assert.Equal(t, "60", summary.MonthlySavings.String())
	assert.Equal(t, "EUR", summary.CurrencyCode)
	assert.Equal(t, "€", summary.CurrencySymbol)
	assert.Equal(t, domain.SymbolAfter, summary.SymbolPosition)
}

func TestFinancialSummary_RecipientSideUsesRecipientAmount(t *testing.T) {
	store := seedStore()
	march := domain.NewDate(2026, time.March, 5)
	store.TransactionRows = []*domain.Transaction{
		// luis paid 55 USD, ana's side is 50 USD
		{ID: 1, UserID: 2, RecipientID: ptrU(1), Amount: ptrF(55), RecipientAmount: ptrF(50),
			Date: march, TypeID: ptrU(domain.TypeIncome), OriginalCurrencyID: ptrU(2)},
	}
	svc := newService(store, map[string]float64{"USD/EUR": 0.9})

	summary, err := svc.FinancialSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "45", summary.TotalIncome.String())
}

func TestFinancialSummary_ConversionFailureKeepsOriginal(t *testing.T) {
	store := seedStore()
	march := domain.NewDate(2026, time.March, 5)
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(80), Date: march, TypeID: ptrU(domain.TypeIncome), OriginalCurrencyID: ptrU(2)},
	}
	svc := newService(store, nil) // no USD/EUR rate

	summary, err := svc.FinancialSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "80", summary.TotalIncome.String())
}

func TestFinancialSummary_IncompleteRowsExcluded(t *testing.T) {
	store := seedStore()
	march := domain.NewDate(2026, time.March, 5)
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(100), Date: march, TypeID: ptrU(domain.TypeIncome), OriginalCurrencyID: ptrU(1)},
		// no amount: the row cannot be summed
		{ID: 2, UserID: 1, Amount: nil, Date: march, TypeID: ptrU(domain.TypeExpense), OriginalCurrencyID: ptrU(1)},
		// no type: the row cannot be bucketed
		{ID: 3, UserID: 1, Amount: ptrF(30), Date: march, TypeID: nil, OriginalCurrencyID: ptrU(1)},
	}
	svc := newService(store, nil)

	summary, err := svc.FinancialSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "100", summary.TotalIncome.String())
	assert.Equal(t, "0", summary.TotalExpense.String())
	assert.Equal(t, "100", summary.Balance.String())
	assert.Equal(t, "100", summary.MonthlyIncome.String())
	assert.Equal(t, "0", summary.MonthlyExpense.String())
}

func TestFinancialSummary_FallbackCurrencyWithoutConfiguration(t *testing.T) {
	store := seedStore()
	store.UserRows[0].CurrencyID = nil
	svc := newService(store, nil)

	summary, err := svc.FinancialSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.FallbackISOCode, summary.CurrencyCode)
	assert.Equal(t, domain.FallbackSymbol, summary.CurrencySymbol)
	assert.Equal(t, domain.FallbackSymbolPosition, summary.SymbolPosition)
	assert.Equal(t, "0", summary.Balance.String())
}

func TestFinancialSummary_UntaggedAmountPassesThrough(t *testing.T) {
	store := seedStore()
	march := domain.NewDate(2026, time.March, 5)
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(25), Date: march, TypeID: ptrU(domain.TypeExpense)},
	}
	svc := newService(store, nil)

	summary, err := svc.FinancialSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "25", summary.TotalExpense.String())
}

func TestExpensesByCategory_GroupsAndExcludesCustom(t *testing.T) {
	store := seedStore()
	store.CategoryRows = []*domain.Category{
		{ID: 10, Name: "Comida", Color: "#AA0000"},
		{ID: 11, Name: "Transporte"},
		{ID: 12, Name: "Mis caprichos", IsCustom: true, UserID: ptrU(1)},
	}
	march := domain.NewDate(2026, time.March, 8)
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(30), Date: march, TypeID: ptrU(domain.TypeExpense), CategoryID: ptrU(10), OriginalCurrencyID: ptrU(1)},
		{ID: 2, UserID: 1, Amount: ptrF(12.5), Date: march, TypeID: ptrU(domain.TypeExpense), CategoryID: ptrU(11), OriginalCurrencyID: ptrU(1)},
		{ID: 3, UserID: 1, Amount: ptrF(20), Date: march, TypeID: ptrU(domain.TypeExpense), CategoryID: ptrU(10), OriginalCurrencyID: ptrU(1)},
		{ID: 4, UserID: 1, Amount: ptrF(99), Date: march, TypeID: ptrU(domain.TypeExpense), CategoryID: ptrU(12), OriginalCurrencyID: ptrU(1)},
		{ID: 5, UserID: 1, Amount: ptrF(500), Date: march, TypeID: ptrU(domain.TypeIncome), CategoryID: ptrU(10), OriginalCurrencyID: ptrU(1)},
	}
	svc := newService(store, nil)

	result, err := svc.ExpensesByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, uint(10), result[0].CategoryID)
	assert.Equal(t, "Comida", result[0].CategoryName)
	assert.Equal(t, "50", result[0].TotalExpense.String())
	assert.Equal(t, "#AA0000", result[0].Color)

	assert.Equal(t, uint(11), result[1].CategoryID)
	assert.Equal(t, "12.5", result[1].TotalExpense.String())
	// no color on the category, second slice takes the second palette entry
	assert.Equal(t, "#36A2EB", result[1].Color)
}

func TestExpensesByCategory_EmptyMonth(t *testing.T) {
	store := seedStore()
	svc := newService(store, nil)

	result, err := svc.ExpensesByCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestMonthlyEvolution_WindowOldestFirst(t *testing.T) {
	store := seedStore()
	jan := domain.NewDate(2026, time.January, 10)
	feb := domain.NewDate(2026, time.February, 10)
	mar := domain.NewDate(2026, time.March, 10)
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(100), Date: jan, TypeID: ptrU(domain.TypeIncome), OriginalCurrencyID: ptrU(1)},
		{ID: 2, UserID: 1, Amount: ptrF(60), Date: feb, TypeID: ptrU(domain.TypeExpense), OriginalCurrencyID: ptrU(1)},
		{ID: 3, UserID: 1, Amount: ptrF(200), Date: mar, TypeID: ptrU(domain.TypeIncome), OriginalCurrencyID: ptrU(1)},
		{ID: 4, UserID: 1, Amount: ptrF(50), Date: mar, TypeID: ptrU(domain.TypeExpense), OriginalCurrencyID: ptrU(1)},
	}
	svc := newService(store, nil)

	result, err := svc.MonthlyEvolution(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, 1, result[0].Month)
	assert.Equal(t, "Enero", result[0].MonthName)
	assert.Equal(t, "Ene", result[0].MonthAbbrev)
	assert.Equal(t, 2026, result[0].Year)
	assert.Equal(t, "100", result[0].TotalIncome.String())

	assert.Equal(t, 2, result[1].Month)
	assert.Equal(t, "60", result[1].TotalExpense.String())
	assert.Equal(t, "-60", result[1].Savings.String())

	assert.Equal(t, 3, result[2].Month)
	assert.Equal(t, "200", result[2].TotalIncome.String())
	assert.Equal(t, "50", result[2].TotalExpense.String())
	assert.Equal(t, "150", result[2].Savings.String())
}

func TestMonthlyEvolution_DefaultWindow(t *testing.T) {
	store := seedStore()
	svc := newService(store, nil)

	result, err := svc.MonthlyEvolution(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, result, DefaultEvolutionMonths)
	assert.Equal(t, int(time.February), result[0].Month)
	assert.Equal(t, int(time.March), result[1].Month)
}
