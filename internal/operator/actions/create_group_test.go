package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

func TestCreateGroup_OwnerBecomesFirstMember(t *testing.T) {
	mockGroups := sqlconfig.NewMockIGroupTable(t)
	writer := &storage.Writer{Groups: mockGroups}

	ownerID := uuid.Must(uuid.NewV4())
	groupID := uuid.Must(uuid.NewV4())

	mockGroups.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.GroupCreate) bool {
		return c.Name == "Household" && c.OwnerID == ownerID
	})).Return(groupID, nil)
	mockGroups.EXPECT().AddMember(mock.Anything, groupID, ownerID).Return(nil)

	action := &CreateGroup{Name: "Household", OwnerID: ownerID}
	id, err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, groupID, id)
}

func TestCreateGroup_InsertErrorSkipsEnrollment(t *testing.T) {
	mockGroups := sqlconfig.NewMockIGroupTable(t)
	writer := &storage.Writer{Groups: mockGroups}

	mockGroups.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("unique violation"))

	action := &CreateGroup{Name: "Household", OwnerID: uuid.Must(uuid.NewV4())}
	id, err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}
