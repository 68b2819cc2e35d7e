// Package user manages user profiles. Changing a user's display
// currency backfills the previous currency onto their untagged
// monetary records so historical amounts keep their original unit.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/repository"
)

// Service manages users.
type Service struct {
	store  repository.Store
	logger *slog.Logger
}

// NewService builds the user service.
func NewService(store repository.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Create registers a user, assigning a UID when none is provided.
func (s *Service) Create(ctx context.Context, u *domain.User) error {
	if u.UID == uuid.Nil {
		u.UID = uuid.New()
	}
	return s.store.Users().Create(ctx, u)
}

// Get returns one user by numeric id.
func (s *Service) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.store.Users().Get(ctx, id)
}

// GetByUID returns one user by external identifier.
func (s *Service) GetByUID(ctx context.Context, uid uuid.UUID) (*domain.User, error) {
	return s.store.Users().FindByUID(ctx, uid)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.store.Users().List(ctx)
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.Users().Delete(ctx, id)
}

// UpdateByUID updates a user's profile. When the display currency
// changes, the previous currency is stamped onto the user's
// transactions and savings goals that carry no currency tag yet; rows
// already tagged are left alone and amounts are never rewritten. The
// profile update and the backfill commit together.
func (s *Service) UpdateByUID(ctx context.Context, uid uuid.UUID, in *domain.User) (*domain.User, error) {
	current, err := s.store.Users().FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	previous := current.CurrencyID
	currencyChanged := in.CurrencyID != nil &&
		(previous == nil || *previous != *in.CurrencyID)

	current.Username = in.Username
	current.Name = in.Name
	current.Surname = in.Surname
	current.Email = in.Email
	current.Language = in.Language
	if in.CurrencyID != nil {
		current.CurrencyID = in.CurrencyID
	}

	err = s.store.Do(ctx, func(tx repository.Store) error {
		if err := tx.Users().Update(ctx, current); err != nil {
			return err
		}
		if !currencyChanged || previous == nil {
			return nil
		}
		return backfillCurrency(ctx, tx, current.ID, *previous)
	})
	if err != nil {
		return nil, err
	}

	if currencyChanged {
		s.logger.Info("display currency changed", "user", current.ID, "currency", *in.CurrencyID)
	}
	return current, nil
}

// backfillCurrency stamps currencyID onto the user's untagged
// transactions and savings goals.
func backfillCurrency(ctx context.Context, tx repository.Store, userID, currencyID uint) error {
	txs, err := tx.Transactions().ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, t := range txs {
		if t.OriginalCurrencyID != nil {
			continue
		}
		id := currencyID
		t.OriginalCurrencyID = &id
		if err := tx.Transactions().Update(ctx, t); err != nil {
			return err
		}
	}

	goals, err := tx.SavingsGoals().ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, g := range goals {
		if g.OriginalCurrencyID != nil {
			continue
		}
		id := currencyID
		g.OriginalCurrencyID = &id
		if err := tx.SavingsGoals().Update(ctx, g); err != nil {
			return err
		}
	}
	return nil
}
