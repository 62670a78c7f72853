package shared

import (
	"context"

	"flashsale-core/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner abstracts transaction execution so callers can be tested without
// a live database.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx db.DBTX) error) error
}

type PgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxTxRunner(pool *pgxpool.Pool) *PgxTxRunner {
	return &PgxTxRunner{pool: pool}
}

func (r *PgxTxRunner) RunInTx(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := RunInTxWithRetry(ctx, r.pool, 3, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}
