package actions

import (
	"context"

	"github.com/carson-networks/savings-server/internal/storage"
)

type DeleteSaving struct {
	ID int64

	// Affected is the number of rows removed; zero means no such row.
	Affected int64

	IAction
}

func (a *DeleteSaving) Perform(ctx context.Context, writer *storage.Writer) error {
	affected, err := writer.Savings.Delete(ctx, a.ID)
	if err != nil {
		return err
	}

	a.Affected = affected
	return nil
}
