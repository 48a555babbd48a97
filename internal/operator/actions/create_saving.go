package actions

import (
	"context"

	"github.com/carson-networks/savings-server/internal/storage"
	"github.com/carson-networks/savings-server/internal/storage/saving"
)

type CreateSaving struct {
	Create *saving.Create

	// Result is the persisted row, set on success.
	Result *saving.Saving

	IAction
}

func (a *CreateSaving) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Savings.Create(ctx, a.Create)
	if err != nil {
		return err
	}

	a.Result = row
	return nil
}
