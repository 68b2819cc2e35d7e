package repository

import (
	"context"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/repository"
	"gorm.io/gorm"
)

// Store bundles all GORM repositories behind one transaction boundary.
// Repositories returned by a store inside Do share the transaction
// session, so multi-step writes are atomic.
type Store struct {
	db *gorm.DB
}

// NewStore creates the store for the given *gorm.DB.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Do runs fn against a store bound to a single database transaction.
func (s *Store) Do(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Users() repository.UserRepository         { return NewUserRepository(s.db) }
func (s *Store) Currencies() repository.CurrencyRepository { return NewCurrencyRepository(s.db) }
func (s *Store) Transactions() repository.TransactionRepository {
	return NewTransactionRepository(s.db)
}
func (s *Store) GroupTransactions() repository.GroupTransactionRepository {
	return NewGroupTransactionRepository(s.db)
}
func (s *Store) SavingsGoals() repository.SavingsGoalRepository {
	return NewSavingsGoalRepository(s.db)
}
func (s *Store) Budgets() repository.BudgetRepository     { return NewBudgetRepository(s.db) }
func (s *Store) Categories() repository.CategoryRepository { return NewCategoryRepository(s.db) }
func (s *Store) Groups() repository.Repository[domain.Group] {
	return NewGenericRepository[domain.Group](s.db)
}
func (s *Store) GroupMembers() repository.GroupMemberRepository {
	return NewGroupMemberRepository(s.db)
}
func (s *Store) TransactionTypes() repository.Repository[domain.TransactionType] {
	return NewGenericRepository[domain.TransactionType](s.db)
}
func (s *Store) TransactionStatuses() repository.Repository[domain.TransactionStatus] {
	return NewGenericRepository[domain.TransactionStatus](s.db)
}
func (s *Store) Attachments() repository.Repository[domain.Attachment] {
	return NewGenericRepository[domain.Attachment](s.db)
}

var _ repository.Store = (*Store)(nil)
