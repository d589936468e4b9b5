package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

func newGroupTestService(t *testing.T) (*GroupService, *sqlconfig.MockIGroupTable, *sqlconfig.MockIUserTable) {
	t.Helper()
	mockGroups := sqlconfig.NewMockIGroupTable(t)
	mockUsers := sqlconfig.NewMockIUserTable(t)
	store := &storage.Storage{Groups: mockGroups, Users: mockUsers}
	svc := NewGroupService(store)
	return svc, mockGroups, mockUsers
}

func storedGroup(ownerID uuid.UUID) *sqlconfig.Group {
	return &sqlconfig.Group{
		ID:      uuid.Must(uuid.NewV4()),
		Name:    "Household",
		OwnerID: ownerID,
	}
}

func TestGetGroup_OwnerSeesMembers(t *testing.T) {
	svc, mockGroups, _ := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	mockGroups.EXPECT().ListMembers(mock.Anything, group.ID).Return([]*sqlconfig.GroupMember{
		{UserID: owner, FirstName: "Ada", LastName: "Lovelace"},
	}, nil)

	result, err := svc.GetGroup(context.Background(), owner, group.ID)

	assert.NoError(t, err)
	assert.Equal(t, group.ID, result.ID)
	assert.Len(t, result.Members, 1)
	assert.Equal(t, "Ada", result.Members[0].FirstName)
}

func TestGetGroup_StrangerGetsNotFound(t *testing.T) {
	svc, mockGroups, _ := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	mockGroups.EXPECT().IsMember(mock.Anything, group.ID, stranger).Return(false, nil)

	result, err := svc.GetGroup(context.Background(), stranger, group.ID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestGetGroup_MissingGroup(t *testing.T) {
	svc, mockGroups, _ := newGroupTestService(t)

	groupID := uuid.Must(uuid.NewV4())
	mockGroups.EXPECT().FindByID(mock.Anything, groupID).Return(nil, nil)

	result, err := svc.GetGroup(context.Background(), uuid.Must(uuid.NewV4()), groupID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestUpdateGroup_NonOwnerForbidden(t *testing.T) {
	svc, mockGroups, _ := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	member := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)

	err := svc.UpdateGroup(context.Background(), member, group.ID, GroupUpdate{Name: "Renamed"})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateGroup_OwnerSucceeds(t *testing.T) {
	svc, mockGroups, _ := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	mockGroups.EXPECT().Update(mock.Anything, group.ID, mock.MatchedBy(func(u *sqlconfig.GroupUpdate) bool {
		return u.Name == "Renamed"
	})).Return(nil)

	err := svc.UpdateGroup(context.Background(), owner, group.ID, GroupUpdate{Name: "Renamed"})

	assert.NoError(t, err)
}

func TestAddMember_UserMustExist(t *testing.T) {
	svc, mockGroups, mockUsers := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	newMember := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	mockUsers.EXPECT().FindByID(mock.Anything, newMember).Return(nil, nil)

	err := svc.AddMember(context.Background(), owner, group.ID, newMember)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddMember_OwnerAddsExistingUser(t *testing.T) {
	svc, mockGroups, mockUsers := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	newMember := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	mockUsers.EXPECT().FindByID(mock.Anything, newMember).Return(&sqlconfig.User{ID: newMember}, nil)
	mockGroups.EXPECT().AddMember(mock.Anything, group.ID, newMember).Return(nil)

	err := svc.AddMember(context.Background(), owner, group.ID, newMember)

	assert.NoError(t, err)
}

func TestRemoveMember_OwnerCannotRemoveSelf(t *testing.T) {
	svc, mockGroups, _ := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)

	err := svc.RemoveMember(context.Background(), owner, group.ID, owner)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequireAccess_MemberAllowed(t *testing.T) {
	svc, mockGroups, _ := newGroupTestService(t)

	owner := uuid.Must(uuid.NewV4())
	member := uuid.Must(uuid.NewV4())
	group := storedGroup(owner)

	mockGroups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	mockGroups.EXPECT().IsMember(mock.Anything, group.ID, member).Return(true, nil)

	err := svc.RequireAccess(context.Background(), member, group.ID)

	assert.NoError(t, err)
}
