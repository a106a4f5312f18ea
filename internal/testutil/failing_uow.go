package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/culiacan/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork that fails the FailOn-th ExecContext of
// each transaction with Err, counting from 1. Reads are never counted. Use it
// to break a save between the slot write and the history write.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	// Execs is the number of writes attempted across all transactions.
	Execs int
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingTx{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow *FailOnNthExecUoW
	n   int
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.n++
	f.uow.Execs++
	if f.n == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
