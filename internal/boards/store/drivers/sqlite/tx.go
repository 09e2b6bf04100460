package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/internal/boards/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the pool stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op: the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users   { return &usersRepo{q: t.q} }
func (t *txStore) Boards() store.Boards { return &boardsRepo{q: t.q} }
func (t *txStore) Todos() store.Todos   { return &todosRepo{q: t.q} }

// ApplyMigrations is a no-op; migrations run on the Store before serving.
func (t *txStore) ApplyMigrations() error { return nil }
