// Package savings manages savings goals and their contributions. A
// contribution both raises the goal's accumulated amount and records a
// completed expense transaction, in one database transaction.
package savings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/repository"
	"github.com/lumeo-app/backend/pkg/service/display"
)

// ContributionMessage confirms a successful contribution. The wording
// is part of the wire contract the frontend shows verbatim.
const ContributionMessage = "Cantidad agregada correctamente"

// Service manages savings goals.
type Service struct {
	store     repository.Store
	converter exchange.AmountConverter
	logger    *slog.Logger
}

// NewService builds the savings service.
func NewService(store repository.Store, converter exchange.AmountConverter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, converter: converter, logger: logger}
}

// ListByUserUID returns the user's goals with both amounts converted to
// their display currency.
func (s *Service) ListByUserUID(ctx context.Context, uid uuid.UUID) ([]dto.SavingsGoalView, error) {
	user, err := s.store.Users().FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	disp := display.ForUser(ctx, s.store.Currencies(), user)

	goals, err := s.store.SavingsGoals().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	views := make([]dto.SavingsGoalView, 0, len(goals))
	for _, g := range goals {
		target, current := g.TargetAmount, g.CurrentAmount
		if iso, ok := display.ISOForID(ctx, s.store.Currencies(), g.OriginalCurrencyID); ok {
			target = s.converter.ConvertOrOriginal(ctx, target, iso, disp.Code)
			current = s.converter.ConvertOrOriginal(ctx, current, iso, disp.Code)
		}
		views = append(views, dto.SavingsGoalView{
			ID:                 g.ID,
			Title:              g.Title,
			TargetAmount:       target,
			CurrentAmount:      current,
			UserID:             g.UserID,
			OriginalCurrencyID: g.OriginalCurrencyID,
			CreatedAt:          g.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          g.UpdatedAt.Format(time.RFC3339),
			SymbolPosition:     disp.SymbolPosition,
		})
	}
	return views, nil
}

// CreateForUID creates a goal owned by the user identified by uid. A
// goal without an explicit currency is tagged with the owner's display
// currency, which freezes the unit its amounts are expressed in.
func (s *Service) CreateForUID(ctx context.Context, uid uuid.UUID, goal *domain.SavingsGoal) error {
	user, err := s.store.Users().FindByUID(ctx, uid)
	if err != nil {
		return err
	}
	goal.UserID = user.ID
	if goal.OriginalCurrencyID == nil {
		goal.OriginalCurrencyID = user.CurrencyID
	}
	return s.store.SavingsGoals().Create(ctx, goal)
}

// Get returns one goal.
func (s *Service) Get(ctx context.Context, id uint) (*domain.SavingsGoal, error) {
	return s.store.SavingsGoals().Get(ctx, id)
}

// Update replaces the mutable fields of a goal. The currency tag is
// never rewritten.
func (s *Service) Update(ctx context.Context, id uint, in *domain.SavingsGoal) (*domain.SavingsGoal, error) {
	goal, err := s.store.SavingsGoals().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	goal.Title = in.Title
	goal.TargetAmount = in.TargetAmount
	goal.CurrentAmount = in.CurrentAmount
	if err := s.store.SavingsGoals().Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes a goal.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.SavingsGoals().Delete(ctx, id)
}

// AddContribution adds amount to the goal and records the matching
// expense transaction atomically. The contribution must be positive and
// must not push the accumulated amount past the target.
func (s *Service) AddContribution(ctx context.Context, goalID uint, amount float64) (*dto.ContributionResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidContribution
	}
	goal, err := s.store.SavingsGoals().Get(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.CurrentAmount+amount > goal.TargetAmount {
		return nil, domain.ErrContributionExceedsTarget
	}

	currencyID := goal.OriginalCurrencyID
	if currencyID == nil {
		if owner, err := s.store.Users().Get(ctx, goal.UserID); err == nil {
			currencyID = owner.CurrencyID
		}
	}

	err = s.store.Do(ctx, func(tx repository.Store) error {
		goal.CurrentAmount += amount
		if err := tx.SavingsGoals().Update(ctx, goal); err != nil {
			return err
		}
		typeID := domain.TypeExpense
		statusID := domain.StatusCompleted
		contribution := amount
		record := &domain.Transaction{
			Title:              fmt.Sprintf("Aporte a %s", goal.Title),
			Amount:             &contribution,
			Date:               domain.Today(),
			UserID:             goal.UserID,
			TypeID:             &typeID,
			StatusID:           &statusID,
			OriginalCurrencyID: currencyID,
		}
		return tx.Transactions().Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("savings contribution added", "goal", goal.ID, "amount", amount)
	return &dto.ContributionResult{
		Success:       true,
		Message:       ContributionMessage,
		CurrentAmount: goal.CurrentAmount,
	}, nil
}
