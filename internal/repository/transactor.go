// Package repository pgx transaction plumbing
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxTxKey struct{}

// injects pgx.Tx into context
func injectTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, pgxTxKey{}, tx)
}

// retrieves pgx.Tx from context
func extractTx(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(pgxTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// PgxTransactor represents pgx transactor behavior
type PgxTransactor interface {
	WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}

type pgxTransactor struct {
	pool *pgxpool.Pool
}

// NewPgxTransactor builds new PgxTransactor
func NewPgxTransactor(p *pgxpool.Pool) PgxTransactor {
	return &pgxTransactor{pool: p}
}

// WithinTransaction runs logic within transaction passing context with pgx.Tx injected into it,
// so repositories built on PgxWithinTransactionRunner pick it up via Runner
func (t *pgxTransactor) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) (err error) {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		var txErr error
		if err != nil {
			txErr = tx.Rollback(ctx)
		} else {
			txErr = tx.Commit(ctx)
		}

		if txErr != nil && !errors.Is(txErr, pgx.ErrTxClosed) {
			err = txErr
		}
	}()

	err = txFunc(injectTx(ctx, tx))
	return err
}

// PgxQueryRunner represents query runner behavior
type PgxQueryRunner interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...interface{}) pgx.Row
}

// PgxWithinTransactionRunner represents query runner retriever for pgx
type PgxWithinTransactionRunner interface {
	PgxQueryRunner
	Runner(ctx context.Context) PgxQueryRunner
}

type pgxWithinTransactionRunner struct {
	pool *pgxpool.Pool
}

// NewPgxWithinTransactionRunner builds new PgxWithinTransactionRunner
func NewPgxWithinTransactionRunner(p *pgxpool.Pool) PgxWithinTransactionRunner {
	return &pgxWithinTransactionRunner{pool: p}
}

// Runner extracts query runner from context, if pgx.Tx is injected into context it is returned and pgxpool.Pool otherwise
func (r *pgxWithinTransactionRunner) Runner(ctx context.Context) PgxQueryRunner {
	tx := extractTx(ctx)
	if tx != nil {
		return tx
	}
	return r.pool
}

// Exec calls pgxpool.Pool.Exec or pgx.Tx.Exec depending on execution context
func (r *pgxWithinTransactionRunner) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return r.Runner(ctx).Exec(ctx, sql, arguments...)
}

// Query calls pgxpool.Pool.Query or pgx.Tx.Query depending on execution context
func (r *pgxWithinTransactionRunner) Query(ctx context.Context, sql string, optionsAndArgs ...interface{}) (pgx.Rows, error) {
	return r.Runner(ctx).Query(ctx, sql, optionsAndArgs...)
}

// QueryRow calls pgxpool.Pool.QueryRow or pgx.Tx.QueryRow depending on execution context
func (r *pgxWithinTransactionRunner) QueryRow(ctx context.Context, sql string, optionsAndArgs ...interface{}) pgx.Row {
	return r.Runner(ctx).QueryRow(ctx, sql, optionsAndArgs...)
}
