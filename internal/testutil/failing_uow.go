package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/chessboard/internal/db"
)

// FailingUoW is a UnitOfWork that injects Err into one write of the
// transaction and rolls back, so tests can break any step of a chessboard
// save.
//
// With Table set, the first write to that table fails. Otherwise the FailOn-th
// ExecContext call fails, counting from 1. Reads are never failed.
type FailingUoW struct {
	DB     *sql.DB
	Table  string
	FailOn int32
	Err    error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingTx{DBTX: tx, uow: u}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow   *FailingUoW
	count atomic.Int32
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if f.uow.Table != "" {
		if WrittenTable(query) == f.uow.Table {
			return nil, f.uow.Err
		}
	} else if n == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

var writeStmt = regexp.MustCompile(`(?i)^\s*(?:insert\s+into|update|delete\s+from)\s+([a-z_]+)`)

// WrittenTable returns the table an INSERT, UPDATE or DELETE statement
// writes, or "" for anything else.
func WrittenTable(query string) string {
	m := writeStmt.FindStringSubmatch(query)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
