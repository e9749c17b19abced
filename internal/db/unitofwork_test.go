package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = "2026-01-02T03:04:05Z"

func newUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

// insertLinkedComplex writes a complex and a chessboard pointing at each
// other, the two writes every chessboard create performs together.
func insertLinkedComplex(ctx context.Context, tx db.DBTX, complexID, boardID string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO complexes (id, name, created_at, updated_at) VALUES (?, 'Ocean Park', ?, ?)`,
		complexID, ts, ts); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO chessboards (id, name, complex_id, exchange_rate, public_url, created_at, updated_at)
		 VALUES (?, 'Ocean Park', ?, 16000, ?, ?, ?)`,
		boardID, complexID, "tok"+boardID, ts, ts); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `UPDATE complexes SET chessboard_id = ? WHERE id = ?`, boardID, complexID)
	return err
}

func count(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestWithinTx_CommitsEveryWrite(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertLinkedComplex(ctx, tx, "c1", "b1")
	})
	require.NoError(t, err)

	var link sql.NullString
	require.NoError(t, database.QueryRow(`SELECT chessboard_id FROM complexes WHERE id = 'c1'`).Scan(&link))
	assert.Equal(t, "b1", link.String)
	assert.Equal(t, 1, count(t, database, "chessboards"))
}

func TestWithinTx_ErrorRollsBackEarlierWrites(t *testing.T) {
	database, uow := newUoW(t)
	injected := errors.New("history write failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertLinkedComplex(ctx, tx, "c1", "b1"); err != nil {
			return err
		}
		return injected
	})
	require.ErrorIs(t, err, injected)

	assert.Zero(t, count(t, database, "complexes"))
	assert.Zero(t, count(t, database, "chessboards"))
}

func TestWithinTx_ConstraintFailureRollsBack(t *testing.T) {
	database, uow := newUoW(t)
	ctx := context.Background()
	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return insertLinkedComplex(ctx, tx, "c1", "b1")
	}))

	// A second chessboard for the same complex violates the unique index
	// after the new complex row was already written.
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO complexes (id, name, created_at, updated_at) VALUES ('c2', 'Bay View', ?, ?)`, ts, ts); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO chessboards (id, complex_id, exchange_rate, public_url, created_at, updated_at)
			 VALUES ('b2', 'c1', 16000, 'tokb2', ?, ?)`, ts, ts)
		return err
	})
	require.Error(t, err)

	assert.Equal(t, 1, count(t, database, "complexes"))
	assert.Equal(t, 1, count(t, database, "chessboards"))
}

func TestWithinTx_PanicRollsBackAndPropagates(t *testing.T) {
	database, uow := newUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertLinkedComplex(ctx, tx, "c1", "b1")
			panic("boom")
		})
	})

	assert.Zero(t, count(t, database, "chessboards"))

	// The single in-memory connection is usable again.
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertLinkedComplex(ctx, tx, "c2", "b2")
	}))
	assert.Equal(t, 1, count(t, database, "chessboards"))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	_, uow := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
