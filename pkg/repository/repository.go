// Package repository defines persistence contracts. Services depend on
// these interfaces only; the GORM implementation lives in
// infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumeo-app/backend/pkg/domain"
)

// Repository provides type-safe CRUD operations over one entity type
// without infrastructure coupling.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Get(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]*T, error)
	FindBy(ctx context.Context, query any, args ...any) ([]*T, error)
	FindOneBy(ctx context.Context, query any, args ...any) (*T, error)
}

// UserRepository adds the user lookups used across the API surface.
type UserRepository interface {
	Repository[domain.User]
	FindByUID(ctx context.Context, uid uuid.UUID) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CurrencyRepository resolves currency reference data.
type CurrencyRepository interface {
	Repository[domain.Currency]
	FindByISO(ctx context.Context, iso string) (*domain.Currency, error)
}

// TransactionRepository adds the owner/recipient and date-bounded
// queries the aggregation engine pulls from.
type TransactionRepository interface {
	Repository[domain.Transaction]
	ListByUser(ctx context.Context, userID uint) ([]*domain.Transaction, error)
	ListByUserBetween(ctx context.Context, userID uint, from, to domain.Date) ([]*domain.Transaction, error)
	ListByUserOrRecipient(ctx context.Context, userID uint) ([]*domain.Transaction, error)
	ListByUserOrRecipientBetween(ctx context.Context, userID uint, from, to domain.Date) ([]*domain.Transaction, error)
	ListLastExpenses(ctx context.Context, userID uint, limit int) ([]*domain.Transaction, error)
	ListByGroupTransaction(ctx context.Context, groupTransactionID uint) ([]*domain.Transaction, error)
	DeleteByGroupTransaction(ctx context.Context, groupTransactionID uint) error
}

// GroupTransactionRepository adds the per-group header listing.
type GroupTransactionRepository interface {
	Repository[domain.GroupTransaction]
	ListByGroup(ctx context.Context, groupID uint) ([]*domain.GroupTransaction, error)
}

// SavingsGoalRepository adds per-user goal listing.
type SavingsGoalRepository interface {
	Repository[domain.SavingsGoal]
	ListByUser(ctx context.Context, userID uint) ([]*domain.SavingsGoal, error)
}

// BudgetRepository adds per-user budget listing.
type BudgetRepository interface {
	Repository[domain.Budget]
	ListByUser(ctx context.Context, userID uint) ([]*domain.Budget, error)
}

// CategoryRepository resolves the visible category set for a user:
// all non-custom categories plus the user's own custom ones.
type CategoryRepository interface {
	Repository[domain.Category]
	VisibleForUser(ctx context.Context, userID uint) ([]*domain.Category, error)
}

// GroupMemberRepository manages the user/group join rows.
type GroupMemberRepository interface {
	Repository[domain.GroupMember]
	ListByGroup(ctx context.Context, groupID uint) ([]*domain.GroupMember, error)
	ListByUser(ctx context.Context, userID uint) ([]*domain.GroupMember, error)
	DeleteByGroupAndUser(ctx context.Context, groupID, userID uint) error
}

// Store bundles all repositories behind one transaction boundary. Do
// runs fn against a store bound to a single database transaction: every
// repository obtained inside fn shares that transaction, so multi-step
// writes (group header + N children) are all-or-nothing.
type Store interface {
	Do(ctx context.Context, fn func(Store) error) error

	Users() UserRepository
	Currencies() CurrencyRepository
	Transactions() TransactionRepository
	GroupTransactions() GroupTransactionRepository
	SavingsGoals() SavingsGoalRepository
	Budgets() BudgetRepository
	Categories() CategoryRepository
	Groups() Repository[domain.Group]
	GroupMembers() GroupMemberRepository
	TransactionTypes() Repository[domain.TransactionType]
	TransactionStatuses() Repository[domain.TransactionStatus]
	Attachments() Repository[domain.Attachment]
}
