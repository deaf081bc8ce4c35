package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { _, _ = db.Exec(context.Background(), "") })
	require.Panics(t, func() { _, _ = db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { _, _ = db.BeginTx(context.Background(), pgx.TxOptions{}) })
	require.Panics(t, func() { _ = db.Ping(context.Background()) })
	db.Close()

	called := map[string]bool{}
	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		called["exec"] = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		called["query"] = true
		return fakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		called["row"] = true
		return pgx.Row(fakeRows{})
	}
	db.BeginTxFn = func(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
		called["begin"] = true
		require.Equal(t, pgx.ReadCommitted, opts.IsoLevel)
		return nil, errors.New("tx")
	}
	db.PingFn = func(ctx context.Context) error { called["ping"] = true; return nil }
	db.CloseFn = func() { called["close"] = true }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	_, err = db.BeginTx(context.Background(), pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	require.EqualError(t, err, "tx")
	require.NoError(t, db.Ping(context.Background()))
	db.Close()

	for _, k := range []string{"exec", "query", "row", "begin", "ping", "close"} {
		require.True(t, called[k], k)
	}
}
