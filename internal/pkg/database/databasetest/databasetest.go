// Package databasetest provides a no-op database for service tests that fake
// their repositories in memory: transactions open and commit without touching
// a real connection.
package databasetest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/restoops/timeclock-backend-go/internal/pkg/database"
)

var errNoQueries = errors.New("databasetest: queries are not supported")

// NullDB returns a *database.DB whose transactions are no-ops. Any attempt to
// run an actual query through it fails, so it only suits tests whose
// repositories never reach the pool.
func NullDB() *database.DB {
	return database.NewFromPool(nullPool{})
}

type nullPool struct{}

func (nullPool) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errNoQueries
}

func (nullPool) Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error) {
	return nil, errNoQueries
}

func (nullPool) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return errRow{}
}

func (nullPool) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return nil
}

func (nullPool) Begin(ctx context.Context) (pgx.Tx, error) {
	return nullTx{}, nil
}

func (nullPool) Ping(ctx context.Context) error { return nil }

func (nullPool) Close() {}

type nullTx struct{}

func (nullTx) Begin(ctx context.Context) (pgx.Tx, error) { return nullTx{}, nil }

func (nullTx) Commit(ctx context.Context) error { return nil }

func (nullTx) Rollback(ctx context.Context) error { return nil }

func (nullTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errNoQueries
}

func (nullTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (nullTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (nullTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errNoQueries
}

func (nullTx) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errNoQueries
}

func (nullTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return nil, errNoQueries
}

func (nullTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return errRow{}
}

func (nullTx) Conn() *pgx.Conn { return nil }

type errRow struct{}

func (errRow) Scan(dest ...interface{}) error { return errNoQueries }
