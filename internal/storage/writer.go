package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/savings-server/internal/storage/saving"
)

// Writer bundles the table writers bound to one transaction.
type Writer struct {
	tx      bob.Tx
	Savings *saving.Writer
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:      tx,
		Savings: saving.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
