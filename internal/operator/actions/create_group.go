package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// CreateGroup creates a group and enrolls the owner as its first member in
// the same transaction, so member_count includes the owner from the start.
type CreateGroup struct {
	Name        string
	Description string
	OwnerID     uuid.UUID
}

func (a *CreateGroup) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	groupID, err := writer.Groups.Insert(ctx, &sqlconfig.GroupCreate{
		Name:        a.Name,
		Description: a.Description,
		OwnerID:     a.OwnerID,
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := writer.Groups.AddMember(ctx, groupID, a.OwnerID); err != nil {
		return uuid.Nil, err
	}

	return groupID, nil
}
