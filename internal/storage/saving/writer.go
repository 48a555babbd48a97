package saving

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Writer performs the write operations within one transaction.
type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Create inserts a new row. Both timestamps are set to the same instant so a
// freshly created row always has created_at == updated_at.
func (w *Writer) Create(ctx context.Context, create *Create) (*Saving, error) {
	now := time.Now().UTC()

	query := psql.Insert(
		im.Into(tableName, "amount", "source", "created_at", "updated_at"),
		im.Values(psql.Arg(create.Amount), psql.Arg(create.Source), psql.Arg(now), psql.Arg(now)),
		im.Returning("id", "amount", "source", "created_at", "updated_at"),
	)

	return bob.One(ctx, w.tx, query, scan.StructMapper[*Saving]())
}

// Update applies the patch as a single conditional statement: only set fields
// are touched, updated_at is always refreshed. Returns nil when no row has
// the id.
func (w *Writer) Update(ctx context.Context, id int64, patch *Patch) (*Saving, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(tableName),
		um.SetCol("updated_at").To(psql.Arg(time.Now().UTC())),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("id", "amount", "source", "created_at", "updated_at"),
	}
	if patch.Amount.IsValue() {
		queryMods = append(queryMods, um.SetCol("amount").To(psql.Arg(patch.Amount.MustGet())))
	}
	if patch.Source.IsValue() {
		queryMods = append(queryMods, um.SetCol("source").To(psql.Arg(patch.Source.MustGet())))
	}

	row, err := bob.One(ctx, w.tx, psql.Update(queryMods...), scan.StructMapper[*Saving]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// Delete removes the row and reports how many rows were affected, so callers
// can tell a successful delete from a no-op on a missing id.
func (w *Writer) Delete(ctx context.Context, id int64) (int64, error) {
	query := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
