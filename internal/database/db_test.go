package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	t.Run("delegates to configured funcs", func(t *testing.T) {
		db := &FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				require.Equal(t, "UPDATE x", sql)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
			BeginFn: func(context.Context) (pgx.Tx, error) { return &FakeTx{}, nil },
			PingFn:  func(context.Context) error { return errors.New("down") },
		}
		tag, err := db.Exec(context.Background(), "UPDATE x")
		require.NoError(t, err)
		require.EqualValues(t, 1, tag.RowsAffected())

		tx, err := db.Begin(context.Background())
		require.NoError(t, err)
		require.NotNil(t, tx)

		require.Error(t, db.Ping(context.Background()))
	})

	t.Run("panics on unconfigured calls", func(t *testing.T) {
		db := &FakeDB{}
		require.Panics(t, func() { db.Exec(context.Background(), "") })
		require.Panics(t, func() { db.Query(context.Background(), "") })
		require.Panics(t, func() { db.QueryRow(context.Background(), "") })
		require.Panics(t, func() { db.Begin(context.Background()) })
		require.Panics(t, func() { db.Ping(context.Background()) })
		db.Close()
	})
}

func TestFakeTx(t *testing.T) {
	t.Run("commit and rollback default to nil", func(t *testing.T) {
		tx := &FakeTx{}
		require.NoError(t, tx.Commit(context.Background()))
		require.NoError(t, tx.Rollback(context.Background()))
		require.Nil(t, tx.Conn())
	})

	t.Run("nested begin opens what the test configures", func(t *testing.T) {
		inner := &FakeTx{}
		tx := &FakeTx{
			BeginFn: func(context.Context) (pgx.Tx, error) { return inner, nil },
		}
		sp, err := tx.Begin(context.Background())
		require.NoError(t, err)
		require.Same(t, pgx.Tx(inner), sp)
	})

	t.Run("panics on unconfigured calls", func(t *testing.T) {
		tx := &FakeTx{}
		require.Panics(t, func() { tx.Exec(context.Background(), "") })
		require.Panics(t, func() { tx.Begin(context.Background()) })
		require.Panics(t, func() { tx.LargeObjects() })
	})
}
