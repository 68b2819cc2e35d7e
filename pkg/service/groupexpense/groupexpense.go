// Package groupexpense implements the shared-expense split engine: one
// header per group expense plus one child transaction per participating
// member, written atomically.
package groupexpense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/repository"
	"github.com/lumeo-app/backend/pkg/service/display"
)

// Service manages group expenses.
type Service struct {
	store     repository.Store
	converter exchange.AmountConverter
	logger    *slog.Logger
}

// NewService builds the group-expense service.
func NewService(store repository.Store, converter exchange.AmountConverter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, converter: converter, logger: logger}
}

// Create splits a shared expense: it writes the header and one pending
// child transaction per member in a single database transaction. The
// header is tagged with the first member's display currency; each child
// is tagged with its own member's currency.
func (s *Service) Create(ctx context.Context, in *dto.CreateGroupTransaction) (*domain.GroupTransaction, error) {
	if len(in.Shares) == 0 {
		return nil, fmt.Errorf("%w: a group expense needs at least one share", domain.ErrValidation)
	}

	first, err := s.store.Users().Get(ctx, in.Shares[0].UserID)
	if err != nil {
		return nil, fmt.Errorf("resolving first member: %w", err)
	}

	date := in.Date
	if date.IsZero() {
		date = domain.Today()
	}

	header := &domain.GroupTransaction{
		Title:              in.Title,
		Amount:             &in.TotalAmount,
		Date:               date,
		Note:               in.Note,
		GroupID:            in.GroupID,
		CategoryID:         in.CategoryID,
		TypeID:             in.TypeID,
		AttachmentID:       in.AttachmentID,
		OriginalCurrencyID: first.CurrencyID,
	}

	err = s.store.Do(ctx, func(tx repository.Store) error {
		if err := tx.GroupTransactions().Create(ctx, header); err != nil {
			return err
		}
		for i := range in.Shares {
			share := in.Shares[i]
			member, err := tx.Users().Get(ctx, share.UserID)
			if err != nil {
				return fmt.Errorf("resolving member %d: %w", share.UserID, err)
			}
			status := domain.StatusPending
			child := &domain.Transaction{
				Title:              in.Title,
				Amount:             &share.Amount,
				Date:               date,
				Note:               in.Note,
				UserID:             member.ID,
				CategoryID:         in.CategoryID,
				TypeID:             in.TypeID,
				StatusID:           &status,
				AttachmentID:       in.AttachmentID,
				OriginalCurrencyID: member.CurrencyID,
				GroupTransactionID: &header.ID,
			}
			if err := tx.Transactions().Create(ctx, child); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("group expense created",
		"id", header.ID, "shares", len(in.Shares), "total", in.TotalAmount)
	return header, nil
}

// ListByGroup returns the group's expense headers converted to the
// viewing user's display currency.
func (s *Service) ListByGroup(ctx context.Context, groupID, viewerID uint) ([]dto.GroupTransactionView, error) {
	disp := s.viewerCurrency(ctx, viewerID)
	headers, err := s.store.GroupTransactions().ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	views := make([]dto.GroupTransactionView, 0, len(headers))
	for _, h := range headers {
		views = append(views, s.toView(ctx, h, disp))
	}
	return views, nil
}

// Detail returns one expense header with its child transactions, every
// amount converted to the viewing user's display currency and each
// child annotated with its member's identity.
func (s *Service) Detail(ctx context.Context, id, viewerID uint) (*dto.GroupTransactionView, error) {
	header, err := s.store.GroupTransactions().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	disp := s.viewerCurrency(ctx, viewerID)
	view := s.toView(ctx, header, disp)

	children, err := s.store.Transactions().ListByGroupTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Children = make([]dto.TransactionView, 0, len(children))
	for _, c := range children {
		child := dto.TransactionView{
			ID:                 c.ID,
			Title:              c.Title,
			Amount:             c.Amount,
			Date:               c.Date,
			Note:               c.Note,
			UserID:             c.UserID,
			CategoryID:         c.CategoryID,
			GroupID:            c.GroupID,
			TypeID:             c.TypeID,
			StatusID:           c.StatusID,
			AttachmentID:       c.AttachmentID,
			RecipientID:        c.RecipientID,
			RecipientAmount:    c.RecipientAmount,
			OriginalCurrencyID: c.OriginalCurrencyID,
			SymbolPosition:     disp.SymbolPosition,
		}
		if c.Amount != nil {
			iso, ok := display.ISOForID(ctx, s.store.Currencies(), c.OriginalCurrencyID)
			converted := *c.Amount
			if ok {
				converted = s.converter.ConvertOrOriginal(ctx, converted, iso, disp.Code)
			}
			child.Amount = &converted
		}
		if member, err := s.store.Users().Get(ctx, c.UserID); err == nil {
			child.Username = member.Username
			child.Name = member.Name
			child.Surname = member.Surname
		}
		view.Children = append(view.Children, child)
	}
	return &view, nil
}

// Delete removes the header and all of its children atomically.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.GroupTransactions().Get(ctx, id); err != nil {
		return err
	}
	return s.store.Do(ctx, func(tx repository.Store) error {
		if err := tx.Transactions().DeleteByGroupTransaction(ctx, id); err != nil {
			return err
		}
		return tx.GroupTransactions().Delete(ctx, id)
	})
}

func (s *Service) viewerCurrency(ctx context.Context, viewerID uint) display.Info {
	viewer, err := s.store.Users().Get(ctx, viewerID)
	if err != nil {
		viewer = nil
	}
	return display.ForUser(ctx, s.store.Currencies(), viewer)
}

func (s *Service) toView(ctx context.Context, h *domain.GroupTransaction, disp display.Info) dto.GroupTransactionView {
	view := dto.GroupTransactionView{
		ID:                 h.ID,
		Title:              h.Title,
		Date:               h.Date,
		Note:               h.Note,
		GroupID:            h.GroupID,
		CategoryID:         h.CategoryID,
		TypeID:             h.TypeID,
		AttachmentID:       h.AttachmentID,
		OriginalCurrencyID: h.OriginalCurrencyID,
		SymbolPosition:     disp.SymbolPosition,
	}
	if h.Amount != nil {
		view.OriginalAmount = *h.Amount
		view.Amount = *h.Amount
		iso, ok := display.ISOForID(ctx, s.store.Currencies(), h.OriginalCurrencyID)
		if ok {
			view.OriginalCurrencyCode = iso
			view.Amount = s.converter.ConvertOrOriginal(ctx, *h.Amount, iso, disp.Code)
		}
	}
	if h.GroupID != nil {
		if g, err := s.store.Groups().Get(ctx, *h.GroupID); err == nil {
			view.GroupName = g.Name
		}
	}
	if h.CategoryID != nil {
		if c, err := s.store.Categories().Get(ctx, *h.CategoryID); err == nil {
			view.CategoryName = c.Name
		}
	}
	if h.TypeID != nil {
		if t, err := s.store.TransactionTypes().Get(ctx, *h.TypeID); err == nil {
			view.TypeName = t.Description
		}
	}
	return view
}
