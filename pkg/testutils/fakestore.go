// Package testutils provides an in-memory repository.Store used by
// service tests. It mirrors the query semantics of the GORM
// implementation closely enough for business-logic assertions; it does
// not simulate transaction rollback.
package testutils

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/repository"
)

// ErrUnsupportedQuery is returned by the raw query helpers, which the
// services never use; typed queries cover everything.
var ErrUnsupportedQuery = errors.New("raw queries are not supported by the fake store")

// FakeStore implements repository.Store over slices.
type FakeStore struct {
	UserRows        []*domain.User
	CurrencyRows    []*domain.Currency
	TransactionRows []*domain.Transaction
	GroupTxRows     []*domain.GroupTransaction
	GoalRows        []*domain.SavingsGoal
	BudgetRows      []*domain.Budget
	CategoryRows    []*domain.Category
	GroupRows       []*domain.Group
	MemberRows      []*domain.GroupMember
	TypeRows        []*domain.TransactionType
	StatusRows      []*domain.TransactionStatus
	AttachmentRows  []*domain.Attachment

	// Err, when set, is returned by every write operation.
	Err error

	nextID uint
}

// NewFakeStore returns an empty store.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Do runs fn against the same store; there is no rollback simulation.
func (s *FakeStore) Do(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

func (s *FakeStore) nextSequence() uint {
	s.nextID++
	return s.nextID
}

// fakeRepo provides the generic CRUD surface over one slice.
type fakeRepo[T any] struct {
	store *FakeStore
	rows  *[]*T
	id    func(*T) uint
	setID func(*T, uint)
}

func (r fakeRepo[T]) Create(ctx context.Context, entity *T) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	if r.id(entity) == 0 {
		r.setID(entity, r.store.nextSequence())
	}
	*r.rows = append(*r.rows, entity)
	return nil
}

func (r fakeRepo[T]) Get(ctx context.Context, id uint) (*T, error) {
	for _, e := range *r.rows {
		if r.id(e) == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r fakeRepo[T]) Update(ctx context.Context, entity *T) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	for i, e := range *r.rows {
		if r.id(e) == r.id(entity) {
			(*r.rows)[i] = entity
			return nil
		}
	}
	*r.rows = append(*r.rows, entity)
	return nil
}

func (r fakeRepo[T]) Delete(ctx context.Context, id uint) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	for i, e := range *r.rows {
		if r.id(e) == id {
			*r.rows = append((*r.rows)[:i], (*r.rows)[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r fakeRepo[T]) List(ctx context.Context) ([]*T, error) {
	out := make([]*T, len(*r.rows))
	copy(out, *r.rows)
	return out, nil
}

func (r fakeRepo[T]) FindBy(ctx context.Context, query any, args ...any) ([]*T, error) {
	return nil, ErrUnsupportedQuery
}

func (r fakeRepo[T]) FindOneBy(ctx context.Context, query any, args ...any) (*T, error) {
	return nil, ErrUnsupportedQuery
}

type fakeUsers struct{ fakeRepo[domain.User] }

func (r fakeUsers) FindByUID(ctx context.Context, uid uuid.UUID) (*domain.User, error) {
	for _, u := range *r.rows {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r fakeUsers) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range *r.rows {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeCurrencies struct{ fakeRepo[domain.Currency] }

func (r fakeCurrencies) FindByISO(ctx context.Context, iso string) (*domain.Currency, error) {
	for _, c := range *r.rows {
		if strings.EqualFold(c.ISOCode, iso) {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeTransactions struct{ fakeRepo[domain.Transaction] }

func (r fakeTransactions) ListByUser(ctx context.Context, userID uint) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range *r.rows {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func between(d, from, to domain.Date) bool {
	return !d.Before(from.Time) && !d.After(to.Time)
}

func (r fakeTransactions) ListByUserBetween(ctx context.Context, userID uint, from, to domain.Date) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range *r.rows {
		if t.UserID == userID && between(t.Date, from, to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTransactions) ListByUserOrRecipient(ctx context.Context, userID uint) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range *r.rows {
		if t.UserID == userID || (t.RecipientID != nil && *t.RecipientID == userID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTransactions) ListByUserOrRecipientBetween(ctx context.Context, userID uint, from, to domain.Date) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range *r.rows {
		owner := t.UserID == userID || (t.RecipientID != nil && *t.RecipientID == userID)
		if owner && between(t.Date, from, to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTransactions) ListLastExpenses(ctx context.Context, userID uint, limit int) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range *r.rows {
		if t.UserID == userID && t.TypeID != nil && *t.TypeID == domain.TypeExpense {
			out = append(out, t)
		}
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date.After(out[i].Date.Time) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r fakeTransactions) ListByGroupTransaction(ctx context.Context, groupTransactionID uint) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range *r.rows {
		if t.GroupTransactionID != nil && *t.GroupTransactionID == groupTransactionID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTransactions) DeleteByGroupTransaction(ctx context.Context, groupTransactionID uint) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	kept := (*r.rows)[:0]
	for _, t := range *r.rows {
		if t.GroupTransactionID == nil || *t.GroupTransactionID != groupTransactionID {
			kept = append(kept, t)
		}
	}
	*r.rows = kept
	return nil
}

type fakeGroupTransactions struct{ fakeRepo[domain.GroupTransaction] }

func (r fakeGroupTransactions) ListByGroup(ctx context.Context, groupID uint) ([]*domain.GroupTransaction, error) {
	var out []*domain.GroupTransaction
	for _, g := range *r.rows {
		if g.GroupID != nil && *g.GroupID == groupID {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeGoals struct{ fakeRepo[domain.SavingsGoal] }

func (r fakeGoals) ListByUser(ctx context.Context, userID uint) ([]*domain.SavingsGoal, error) {
	var out []*domain.SavingsGoal
	for _, g := range *r.rows {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeBudgets struct{ fakeRepo[domain.Budget] }

func (r fakeBudgets) ListByUser(ctx context.Context, userID uint) ([]*domain.Budget, error) {
	var out []*domain.Budget
	for _, b := range *r.rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCategories struct{ fakeRepo[domain.Category] }

func (r fakeCategories) VisibleForUser(ctx context.Context, userID uint) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range *r.rows {
		if !c.IsCustom || (c.UserID != nil && *c.UserID == userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeMembers struct{ fakeRepo[domain.GroupMember] }

func (r fakeMembers) ListByGroup(ctx context.Context, groupID uint) ([]*domain.GroupMember, error) {
	var out []*domain.GroupMember
	for _, m := range *r.rows {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r fakeMembers) ListByUser(ctx context.Context, userID uint) ([]*domain.GroupMember, error) {
	var out []*domain.GroupMember
	for _, m := range *r.rows {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r fakeMembers) DeleteByGroupAndUser(ctx context.Context, groupID, userID uint) error {
	for i, m := range *r.rows {
		if m.GroupID == groupID && m.UserID == userID {
			*r.rows = append((*r.rows)[:i], (*r.rows)[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *FakeStore) Users() repository.UserRepository {
	return fakeUsers{fakeRepo[domain.User]{
		store: s, rows: &s.UserRows,
		id:    func(u *domain.User) uint { return u.ID },
		setID: func(u *domain.User, id uint) { u.ID = id },
	}}
}

func (s *FakeStore) Currencies() repository.CurrencyRepository {
	return fakeCurrencies{fakeRepo[domain.Currency]{
		store: s, rows: &s.CurrencyRows,
		id:    func(c *domain.Currency) uint { return c.ID },
		setID: func(c *domain.Currency, id uint) { c.ID = id },
	}}
}

func (s *FakeStore) Transactions() repository.TransactionRepository {
	return fakeTransactions{fakeRepo[domain.Transaction]{
		store: s, rows: &s.TransactionRows,
		id:    func(t *domain.Transaction) uint { return t.ID },
		setID: func(t *domain.Transaction, id uint) { t.ID = id },
	}}
}

func (s *FakeStore) GroupTransactions() repository.GroupTransactionRepository {
	return fakeGroupTransactions{fakeRepo[domain.GroupTransaction]{
		store: s, rows: &s.GroupTxRows,
		id:    func(g *domain.GroupTransaction) uint { return g.ID },
		setID: func(g *domain.GroupTransaction, id uint) { g.ID = id },
	}}
}

func (s *FakeStore) SavingsGoals() repository.SavingsGoalRepository {
	return fakeGoals{fakeRepo[domain.SavingsGoal]{
		store: s, rows: &s.GoalRows,
		id:    func(g *domain.SavingsGoal) uint { return g.ID },
		setID: func(g *domain.SavingsGoal, id uint) { g.ID = id },
	}}
}

func (s *FakeStore) Budgets() repository.BudgetRepository {
	return fakeBudgets{fakeRepo[domain.Budget]{
		store: s, rows: &s.BudgetRows,
		id:    func(b *domain.Budget) uint { return b.ID },
		setID: func(b *domain.Budget, id uint) { b.ID = id },
	}}
}

func (s *FakeStore) Categories() repository.CategoryRepository {
	return fakeCategories{fakeRepo[domain.Category]{
		store: s, rows: &s.CategoryRows,
		id:    func(c *domain.Category) uint { return c.ID },
		setID: func(c *domain.Category, id uint) { c.ID = id },
	}}
}

func (s *FakeStore) Groups() repository.Repository[domain.Group] {
	return fakeRepo[domain.Group]{
		store: s, rows: &s.GroupRows,
		id:    func(g *domain.Group) uint { return g.ID },
		setID: func(g *domain.Group, id uint) { g.ID = id },
	}
}

func (s *FakeStore) GroupMembers() repository.GroupMemberRepository {
	return fakeMembers{fakeRepo[domain.GroupMember]{
		store: s, rows: &s.MemberRows,
		id:    func(m *domain.GroupMember) uint { return m.ID },
		setID: func(m *domain.GroupMember, id uint) { m.ID = id },
	}}
}

func (s *FakeStore) TransactionTypes() repository.Repository[domain.TransactionType] {
	return fakeRepo[domain.TransactionType]{
		store: s, rows: &s.TypeRows,
		id:    func(t *domain.TransactionType) uint { return t.ID },
		setID: func(t *domain.TransactionType, id uint) { t.ID = id },
	}
}

func (s *FakeStore) TransactionStatuses() repository.Repository[domain.TransactionStatus] {
	return fakeRepo[domain.TransactionStatus]{
		store: s, rows: &s.StatusRows,
		id:    func(t *domain.TransactionStatus) uint { return t.ID },
		setID: func(t *domain.TransactionStatus, id uint) { t.ID = id },
	}
}

func (s *FakeStore) Attachments() repository.Repository[domain.Attachment] {
	return fakeRepo[domain.Attachment]{
		store: s, rows: &s.AttachmentRows,
		id:    func(a *domain.Attachment) uint { return a.ID },
		setID: func(a *domain.Attachment, id uint) { a.ID = id },
	}
}

var _ repository.Store = (*FakeStore)(nil)
