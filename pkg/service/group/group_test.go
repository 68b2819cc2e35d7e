package group_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	"github.com/lumeo-app/backend/pkg/service/group"
	"github.com/lumeo-app/backend/pkg/testutils"
)

func seedStore() *testutils.FakeStore {
	store := testutils.NewFakeStore()
	store.UserRows = []*domain.User{
		{ID: 1, Username: "ana", Name: "Ana", Surname: "García"},
		{ID: 2, Username: "luis", Name: "Luis"},
		{ID: 3, Username: "marta", Name: "Marta"},
	}
	return store
}

func TestVerifyUsername(t *testing.T) {
	svc := group.NewService(seedStore(), nil)

	check, err := svc.VerifyUsername(context.Background(), "ana")
	require.NoError(t, err)
	assert.True(t, check.Exists)
	require.NotNil(t, check.UserID)
	assert.Equal(t, uint(1), *check.UserID)
	assert.Equal(t, "Ana", check.Name)

	check, err = svc.VerifyUsername(context.Background(), "nadie")
	require.NoError(t, err)
	assert.False(t, check.Exists)
	assert.Nil(t, check.UserID)
}

func TestCreateWithMembers(t *testing.T) {
	store := seedStore()
	svc := group.NewService(store, nil)

	result, err := svc.CreateWithMembers(context.Background(), &dto.CreateGroup{
		Name: "Piso", CreatorID: 1, Usernames: []string{"luis", "marta", "ana"},
	})
	require.NoError(t, err)
	require.NotZero(t, result.Group.ID)
	assert.Equal(t, uint(1), result.Group.CreatorID)

	// the creator is a member exactly once even when listed
	require.Len(t, result.Members, 3)
	assert.Equal(t, "ana", result.Members[0].Username)
	require.Len(t, store.MemberRows, 3)
}

func TestCreateWithMembers_UnknownUsernameAborts(t *testing.T) {
	store := seedStore()
	svc := group.NewService(store, nil)

	_, err := svc.CreateWithMembers(context.Background(), &dto.CreateGroup{
		Name: "Piso", CreatorID: 1, Usernames: []string{"nadie"},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.GroupRows)
	assert.Empty(t, store.MemberRows)
}

func TestGetWithMembers(t *testing.T) {
	store := seedStore()
	store.GroupRows = []*domain.Group{{ID: 5, Name: "Viaje", CreatorID: 1}}
	store.MemberRows = []*domain.GroupMember{
		{ID: 1, UserID: 1, GroupID: 5},
		{ID: 2, UserID: 2, GroupID: 5},
	}
	svc := group.NewService(store, nil)

	result, err := svc.GetWithMembers(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Viaje", result.Group.Name)
	require.Len(t, result.Members, 2)
	assert.Equal(t, "luis", result.Members[1].Username)
}

func TestListForUser(t *testing.T) {
	store := seedStore()
	store.GroupRows = []*domain.Group{
		{ID: 5, Name: "Viaje", CreatorID: 1},
		{ID: 6, Name: "Piso", CreatorID: 2},
	}
	store.MemberRows = []*domain.GroupMember{
		{ID: 1, UserID: 1, GroupID: 5},
		{ID: 2, UserID: 2, GroupID: 5},
		{ID: 3, UserID: 2, GroupID: 6},
	}
	svc := group.NewService(store, nil)

	groups, err := svc.ListForUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	groups, err = svc.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Viaje", groups[0].Name)
}

func TestAddMemberByUsername_Idempotent(t *testing.T) {
	store := seedStore()
	store.GroupRows = []*domain.Group{{ID: 5, Name: "Viaje", CreatorID: 1}}
	store.MemberRows = []*domain.GroupMember{{ID: 1, UserID: 1, GroupID: 5}}
	svc := group.NewService(store, nil)

	member, err := svc.AddMemberByUsername(context.Background(), 5, "luis")
	require.NoError(t, err)
	assert.Equal(t, uint(2), member.UserID)
	require.Len(t, store.MemberRows, 2)

	_, err = svc.AddMemberByUsername(context.Background(), 5, "luis")
	require.NoError(t, err)
	require.Len(t, store.MemberRows, 2)
}

func TestDelete_RemovesMembership(t *testing.T) {
	store := seedStore()
	store.GroupRows = []*domain.Group{{ID: 5, Name: "Viaje", CreatorID: 1}}
	store.MemberRows = []*domain.GroupMember{
		{ID: 1, UserID: 1, GroupID: 5},
		{ID: 2, UserID: 2, GroupID: 5},
	}
	svc := group.NewService(store, nil)

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Empty(t, store.GroupRows)
	assert.Empty(t, store.MemberRows)
}
