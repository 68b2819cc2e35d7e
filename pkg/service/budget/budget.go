// Package budget manages monthly spending budgets and reports each
// budget against the month's accumulated expenses.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/repository"
	"github.com/lumeo-app/backend/pkg/service/display"
)

// Service manages budgets.
type Service struct {
	store     repository.Store
	converter exchange.AmountConverter
	logger    *slog.Logger
}

// NewService builds the budget service.
func NewService(store repository.Store, converter exchange.AmountConverter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, converter: converter, logger: logger}
}

// ListByUserUID returns the user's budgets, each with the total
// expenses of its month converted to the user's display currency.
func (s *Service) ListByUserUID(ctx context.Context, uid uuid.UUID) ([]dto.BudgetView, error) {
	user, err := s.store.Users().FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	disp := display.ForUser(ctx, s.store.Currencies(), user)

	budgets, err := s.store.Budgets().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	views := make([]dto.BudgetView, 0, len(budgets))
	for _, b := range budgets {
		spent, err := s.monthExpenses(ctx, user.ID, disp.Code, b.Year, time.Month(b.Month))
		if err != nil {
			return nil, err
		}
		views = append(views, dto.BudgetView{
			ID:           b.ID,
			Month:        b.Month,
			MonthName:    dto.MonthName(time.Month(b.Month)),
			Year:         b.Year,
			Amount:       b.Amount,
			TotalExpense: spent,
			UserID:       b.UserID,
		})
	}
	return views, nil
}

// CreateForUID creates a budget owned by the user identified by uid.
func (s *Service) CreateForUID(ctx context.Context, uid uuid.UUID, b *domain.Budget) error {
	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", domain.ErrValidation, b.Month)
	}
	user, err := s.store.Users().FindByUID(ctx, uid)
	if err != nil {
		return err
	}
	b.UserID = user.ID
	return s.store.Budgets().Create(ctx, b)
}

// Update replaces the mutable fields of a budget.
func (s *Service) Update(ctx context.Context, id uint, in *domain.Budget) (*domain.Budget, error) {
	if in.Month < 1 || in.Month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", domain.ErrValidation, in.Month)
	}
	b, err := s.store.Budgets().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Month = in.Month
	b.Year = in.Year
	b.Amount = in.Amount
	if err := s.store.Budgets().Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a budget.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.Budgets().Delete(ctx, id)
}

// monthExpenses sums the user's converted expense amounts within one
// calendar month, rounded to two decimals.
func (s *Service) monthExpenses(ctx context.Context, userID uint, displayISO string, year int, month time.Month) (float64, error) {
	last := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	from := domain.NewDate(year, month, 1)
	to := domain.NewDate(last.Year(), last.Month(), last.Day())

	txs, err := s.store.Transactions().ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, t := range txs {
		if t.TypeID == nil || *t.TypeID != domain.TypeExpense || t.Amount == nil {
			continue
		}
		amount := math.Abs(*t.Amount)
		if iso, ok := display.ISOForID(ctx, s.store.Currencies(), t.OriginalCurrencyID); ok {
			amount = s.converter.ConvertOrOriginal(ctx, amount, iso, displayISO)
		}
		total += amount
	}
	return math.Round(total*100) / 100, nil
}
