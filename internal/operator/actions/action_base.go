package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/storage"
)

// IAction is a write performed atomically by an operator worker. Perform
// returns the ID of the record it created.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error)
}
