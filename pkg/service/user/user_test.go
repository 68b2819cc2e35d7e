package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/service/user"
	"github.com/lumeo-app/backend/pkg/testutils"
)

func ptrU(v uint) *uint       { return &v }
func ptrF(v float64) *float64 { return &v }

var anaUID = uuid.MustParse("3d9cbfb4-2f7e-4f77-9f2b-8f6a1c2d4e5f")

func seedStore() *testutils.FakeStore {
	store := testutils.NewFakeStore()
	store.UserRows = []*domain.User{
		{ID: 1, UID: anaUID, Username: "ana", Name: "Ana", CurrencyID: ptrU(1)},
	}
	return store
}

func TestCreate_AssignsUID(t *testing.T) {
	store := seedStore()
	svc := user.NewService(store, nil)

	u := &domain.User{Username: "luis"}
	require.NoError(t, svc.Create(context.Background(), u))
	assert.NotEqual(t, uuid.Nil, u.UID)
	assert.NotZero(t, u.ID)
}

func TestUpdateByUID_ProfileFields(t *testing.T) {
	store := seedStore()
	svc := user.NewService(store, nil)

	updated, err := svc.UpdateByUID(context.Background(), anaUID, &domain.User{
		Username: "ana2", Name: "Ana", Surname: "García", Email: "ana@example.com", Language: "es",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana2", updated.Username)
	assert.Equal(t, "García", updated.Surname)
	// no currency in the request keeps the configured one
	require.NotNil(t, updated.CurrencyID)
	assert.Equal(t, uint(1), *updated.CurrencyID)
}

func TestUpdateByUID_CurrencyChangeBackfillsUntaggedRows(t *testing.T) {
	store := seedStore()
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(10), Date: domain.Today()},                             // untagged
		{ID: 2, UserID: 1, Amount: ptrF(20), Date: domain.Today(), OriginalCurrencyID: ptrU(2)}, // already tagged
		{ID: 3, UserID: 9, Amount: ptrF(30), Date: domain.Today()},                             // someone else's
	}
	store.GoalRows = []*domain.SavingsGoal{
		{ID: 1, Title: "Coche", TargetAmount: 100, UserID: 1},
		{ID: 2, Title: "Moto", TargetAmount: 100, UserID: 1, OriginalCurrencyID: ptrU(2)},
	}
	svc := user.NewService(store, nil)

	updated, err := svc.UpdateByUID(context.Background(), anaUID, &domain.User{
		Username: "ana", CurrencyID: ptrU(3),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), *updated.CurrencyID)

	// untagged rows get the previous currency, everything else untouched
	assert.Equal(t, uint(1), *store.TransactionRows[0].OriginalCurrencyID)
	assert.Equal(t, 10.0, *store.TransactionRows[0].Amount)
	assert.Equal(t, uint(2), *store.TransactionRows[1].OriginalCurrencyID)
	assert.Nil(t, store.TransactionRows[2].OriginalCurrencyID)

	assert.Equal(t, uint(1), *store.GoalRows[0].OriginalCurrencyID)
	assert.Equal(t, uint(2), *store.GoalRows[1].OriginalCurrencyID)
}

func TestUpdateByUID_SameCurrencyNoBackfill(t *testing.T) {
	store := seedStore()
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(10), Date: domain.Today()},
	}
	svc := user.NewService(store, nil)

	_, err := svc.UpdateByUID(context.Background(), anaUID, &domain.User{
		Username: "ana", CurrencyID: ptrU(1),
	})
	require.NoError(t, err)
	assert.Nil(t, store.TransactionRows[0].OriginalCurrencyID)
}

func TestUpdateByUID_FirstCurrencyNoBackfill(t *testing.T) {
	store := seedStore()
	store.UserRows[0].CurrencyID = nil
	store.TransactionRows = []*domain.Transaction{
		{ID: 1, UserID: 1, Amount: ptrF(10), Date: domain.Today()},
	}
	svc := user.NewService(store, nil)

	// nothing to stamp when there was no previous currency
	_, err := svc.UpdateByUID(context.Background(), anaUID, &domain.User{
		Username: "ana", CurrencyID: ptrU(2),
	})
	require.NoError(t, err)
	assert.Nil(t, store.TransactionRows[0].OriginalCurrencyID)
}

func TestUpdateByUID_UnknownUser(t *testing.T) {
	store := seedStore()
	svc := user.NewService(store, nil)

	_, err := svc.UpdateByUID(context.Background(), uuid.New(), &domain.User{Username: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
