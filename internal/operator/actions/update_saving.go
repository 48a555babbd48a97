package actions

import (
	"context"

	"github.com/carson-networks/savings-server/internal/storage"
	"github.com/carson-networks/savings-server/internal/storage/saving"
)

type UpdateSaving struct {
	ID    int64
	Patch *saving.Patch

	// Result is the updated row; it stays nil when no row has the id.
	Result *saving.Saving

	IAction
}

func (a *UpdateSaving) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Savings.Update(ctx, a.ID, a.Patch)
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}
