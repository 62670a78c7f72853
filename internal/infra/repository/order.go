package repository

import (
	"context"
	"errors"

	"flashsale-core/internal/domain/order"
	"flashsale-core/internal/infra"
	"flashsale-core/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(pool db.DBTX) *OrderRepository {
	return &OrderRepository{db: pool}
}

func (r *OrderRepository) ExistsByUserAndVoucher(ctx context.Context, tx db.DBTX, userID, voucherID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM voucher_orders
			WHERE user_id = $1 AND voucher_id = $2
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, userID, voucherID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check existing order", err)
	}
	return exists, nil
}

// Create inserts the order row. The unique constraint on
// (user_id, voucher_id) is the last line of defense against
// double-persistence; a violation maps to KindDuplicateKey.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.VoucherOrder) error {
	const query = `
		INSERT INTO voucher_orders (id, user_id, voucher_id, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, o.ID(), o.UserID(), o.VoucherID(), o.CreatedAt())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return infra.WrapRepoErr("order already exists for user and voucher", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert voucher order", err)
	}
	return nil
}
