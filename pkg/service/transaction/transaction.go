// Package transaction manages individual income and expense records.
package transaction

import (
	"context"
	"log/slog"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/repository"
	"github.com/lumeo-app/backend/pkg/service/display"
)

// DefaultLastExpenses is how many recent expenses the widget shows.
const DefaultLastExpenses = 5

// Service manages transactions.
type Service struct {
	store     repository.Store
	converter exchange.AmountConverter
	logger    *slog.Logger
}

// NewService builds the transaction service.
func NewService(store repository.Store, converter exchange.AmountConverter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, converter: converter, logger: logger}
}

// Create records a transaction. An untagged transaction is stamped
// with its owner's display currency at creation; the tag never changes
// afterwards. A missing date defaults to today.
func (s *Service) Create(ctx context.Context, t *domain.Transaction) error {
	if t.Date.IsZero() {
		t.Date = domain.Today()
	}
	if t.OriginalCurrencyID == nil {
		owner, err := s.store.Users().Get(ctx, t.UserID)
		if err != nil {
			return err
		}
		t.OriginalCurrencyID = owner.CurrencyID
	}
	return s.store.Transactions().Create(ctx, t)
}

// Get returns one transaction.
func (s *Service) Get(ctx context.Context, id uint) (*domain.Transaction, error) {
	return s.store.Transactions().Get(ctx, id)
}

// Update replaces a transaction's mutable fields. The currency tag
// keeps its original value regardless of what the caller sends.
func (s *Service) Update(ctx context.Context, id uint, in *domain.Transaction) (*domain.Transaction, error) {
	current, err := s.store.Transactions().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tag := current.OriginalCurrencyID
	in.ID = current.ID
	in.OriginalCurrencyID = tag
	if err := s.store.Transactions().Update(ctx, in); err != nil {
		return nil, err
	}
	return in, nil
}

// Delete removes a transaction.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.Transactions().Delete(ctx, id)
}

// ListByUserConverted returns the user's transactions, including those
// where the user is the recipient, with amounts converted to their
// display currency. Recipient-side rows are shown at the recipient
// amount.
func (s *Service) ListByUserConverted(ctx context.Context, userID uint) ([]dto.TransactionView, error) {
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	disp := display.ForUser(ctx, s.store.Currencies(), user)

	txs, err := s.store.Transactions().ListByUserOrRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]dto.TransactionView, 0, len(txs))
	for _, t := range txs {
		view := dto.TransactionView{
			ID:                 t.ID,
			Title:              t.Title,
			Date:               t.Date,
			Note:               t.Note,
			UserID:             t.UserID,
			CategoryID:         t.CategoryID,
			GroupID:            t.GroupID,
			TypeID:             t.TypeID,
			StatusID:           t.StatusID,
			AttachmentID:       t.AttachmentID,
			RecipientID:        t.RecipientID,
			RecipientAmount:    t.RecipientAmount,
			OriginalCurrencyID: t.OriginalCurrencyID,
			SymbolPosition:     disp.SymbolPosition,
		}
		raw := t.Amount
		if t.RecipientID != nil && *t.RecipientID == userID {
			raw = t.RecipientAmount
		}
		if raw != nil {
			converted := *raw
			if iso, ok := display.ISOForID(ctx, s.store.Currencies(), t.OriginalCurrencyID); ok {
				converted = s.converter.ConvertOrOriginal(ctx, converted, iso, disp.Code)
			}
			view.Amount = &converted
		}
		views = append(views, view)
	}
	return views, nil
}

// LastExpenses returns the user's most recent expenses, newest first,
// converted to their display currency. A non-positive limit falls back
// to the default widget size.
func (s *Service) LastExpenses(ctx context.Context, userID uint, limit int) ([]dto.LastExpense, error) {
	if limit < 1 {
		limit = DefaultLastExpenses
	}
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	disp := display.ForUser(ctx, s.store.Currencies(), user)

	txs, err := s.store.Transactions().ListLastExpenses(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LastExpense, 0, len(txs))
	for _, t := range txs {
		entry := dto.LastExpense{
			ID:             t.ID,
			Title:          t.Title,
			Date:           t.Date,
			Note:           t.Note,
			CategoryID:     t.CategoryID,
			SymbolPosition: disp.SymbolPosition,
		}
		if t.Amount != nil {
			converted := *t.Amount
			if iso, ok := display.ISOForID(ctx, s.store.Currencies(), t.OriginalCurrencyID); ok {
				converted = s.converter.ConvertOrOriginal(ctx, converted, iso, disp.Code)
			}
			entry.Amount = &converted
		}
		out = append(out, entry)
	}
	return out, nil
}
