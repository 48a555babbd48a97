package saving

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const tableName = "transactions"

// Reader performs the read operations against the transactions table.
type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns the row with the given id, or nil when no such row
// exists. Absence is not an error; callers decide what a missing row means.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Saving, error) {
	query := psql.Select(
		sm.Columns("id", "amount", "source", "created_at", "updated_at"),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Saving]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// List returns rows ordered newest first, bounded by the filter.
func (r *Reader) List(ctx context.Context, filter *Filter) ([]*Saving, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("id", "amount", "source", "created_at", "updated_at"),
		sm.From(tableName),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Saving]())
}
