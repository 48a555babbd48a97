package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/savings-server/internal/config"
	"github.com/carson-networks/savings-server/internal/storage/saving"
)

// Storage is the shared database handle. It is created once at startup and
// shared by every request-handling task; reads go through Savings, writes go
// through a Writer obtained from Write.
type Storage struct {
	DB      *sql.DB
	bobDB   bob.DB
	Savings *saving.Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:      db,
		bobDB:   bobDB,
		Savings: saving.NewReader(bobDB),
	}, nil
}

// Write opens a transaction-bound Writer. The caller owns Commit/Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
