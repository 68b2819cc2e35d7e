package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumeo-app/backend/pkg/domain"
	"gorm.io/gorm"
)

// UserRepository implements repository.UserRepository.
type UserRepository struct {
	*GenericRepository[domain.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{NewGenericRepository[domain.User](db)}
}

func (r *UserRepository) FindByUID(ctx context.Context, uid uuid.UUID) (*domain.User, error) {
	return r.FindOneBy(ctx, "uid = ?", uid)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.FindOneBy(ctx, "username = ?", username)
}

// CurrencyRepository implements repository.CurrencyRepository.
type CurrencyRepository struct {
	*GenericRepository[domain.Currency]
}

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{NewGenericRepository[domain.Currency](db)}
}

func (r *CurrencyRepository) FindByISO(ctx context.Context, iso string) (*domain.Currency, error) {
	return r.FindOneBy(ctx, "iso_code = ?", iso)
}

// TransactionRepository implements repository.TransactionRepository.
type TransactionRepository struct {
	*GenericRepository[domain.Transaction]
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{NewGenericRepository[domain.Transaction](db), db}
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Transaction, error) {
	return r.FindBy(ctx, "user_id = ?", userID)
}

func (r *TransactionRepository) ListByUserBetween(ctx context.Context, userID uint, from, to domain.Date) ([]*domain.Transaction, error) {
	return r.FindBy(ctx, "user_id = ? AND date BETWEEN ? AND ?", userID, from, to)
}

func (r *TransactionRepository) ListByUserOrRecipient(ctx context.Context, userID uint) ([]*domain.Transaction, error) {
	return r.FindBy(ctx, "user_id = ? OR recipient_id = ?", userID, userID)
}

func (r *TransactionRepository) ListByUserOrRecipientBetween(ctx context.Context, userID uint, from, to domain.Date) ([]*domain.Transaction, error) {
	return r.FindBy(ctx, "(user_id = ? OR recipient_id = ?) AND date BETWEEN ? AND ?", userID, userID, from, to)
}

func (r *TransactionRepository) ListLastExpenses(ctx context.Context, userID uint, limit int) ([]*domain.Transaction, error) {
	var txs []*domain.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type_id = ?", userID, domain.TypeExpense).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) ListByGroupTransaction(ctx context.Context, groupTransactionID uint) ([]*domain.Transaction, error) {
	return r.FindBy(ctx, "group_transaction_id = ?", groupTransactionID)
}

func (r *TransactionRepository) DeleteByGroupTransaction(ctx context.Context, groupTransactionID uint) error {
	return r.db.WithContext(ctx).
		Where("group_transaction_id = ?", groupTransactionID).
		Delete(&domain.Transaction{}).Error
}

// GroupTransactionRepository implements repository.GroupTransactionRepository.
type GroupTransactionRepository struct {
	*GenericRepository[domain.GroupTransaction]
}

func NewGroupTransactionRepository(db *gorm.DB) *GroupTransactionRepository {
	return &GroupTransactionRepository{NewGenericRepository[domain.GroupTransaction](db)}
}

func (r *GroupTransactionRepository) ListByGroup(ctx context.Context, groupID uint) ([]*domain.GroupTransaction, error) {
	return r.FindBy(ctx, "group_id = ?", groupID)
}

// SavingsGoalRepository implements repository.SavingsGoalRepository.
type SavingsGoalRepository struct {
	*GenericRepository[domain.SavingsGoal]
}

func NewSavingsGoalRepository(db *gorm.DB) *SavingsGoalRepository {
	return &SavingsGoalRepository{NewGenericRepository[domain.SavingsGoal](db)}
}

func (r *SavingsGoalRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.SavingsGoal, error) {
	return r.FindBy(ctx, "user_id = ?", userID)
}

// BudgetRepository implements repository.BudgetRepository.
type BudgetRepository struct {
	*GenericRepository[domain.Budget]
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{NewGenericRepository[domain.Budget](db)}
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Budget, error) {
	return r.FindBy(ctx, "user_id = ?", userID)
}

// CategoryRepository implements repository.CategoryRepository.
type CategoryRepository struct {
	*GenericRepository[domain.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{NewGenericRepository[domain.Category](db)}
}

func (r *CategoryRepository) VisibleForUser(ctx context.Context, userID uint) ([]*domain.Category, error) {
	return r.FindBy(ctx, "is_custom = ? OR user_id = ?", false, userID)
}

// GroupMemberRepository implements repository.GroupMemberRepository.
type GroupMemberRepository struct {
	*GenericRepository[domain.GroupMember]
	db *gorm.DB
}

func NewGroupMemberRepository(db *gorm.DB) *GroupMemberRepository {
	return &GroupMemberRepository{NewGenericRepository[domain.GroupMember](db), db}
}

func (r *GroupMemberRepository) ListByGroup(ctx context.Context, groupID uint) ([]*domain.GroupMember, error) {
	return r.FindBy(ctx, "group_id = ?", groupID)
}

func (r *GroupMemberRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.GroupMember, error) {
	return r.FindBy(ctx, "user_id = ?", userID)
}

func (r *GroupMemberRepository) DeleteByGroupAndUser(ctx context.Context, groupID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&domain.GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
