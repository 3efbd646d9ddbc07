package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con la tx como Querier y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ImportSnapshot carga un snapshot en la réplica dentro de una sola transacción.
// Devuelve cuántas filas se insertaron (las existentes se ignoran).
func (r *TxRunner) ImportSnapshot(ctx context.Context, stmts []Statement) (int64, error) {
	var inserted int64
	err := r.Run(ctx, func(q Querier) error {
		n, err := ExecStatements(ctx, q, stmts)
		inserted = n
		return err
	})
	return inserted, err
}
