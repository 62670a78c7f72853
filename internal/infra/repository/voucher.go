package repository

import (
	"context"
	"errors"

	"flashsale-core/internal/infra"
	"flashsale-core/internal/infra/db"
	"flashsale-core/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

type VoucherRepository struct {
	db db.DBTX
}

func NewVoucherRepository(pool db.DBTX) *VoucherRepository {
	return &VoucherRepository{db: pool}
}

func (r *VoucherRepository) FindSeckillVoucher(ctx context.Context, voucherID int64) (*readmodel.SeckillVoucherRM, error) {
	const query = `
		SELECT voucher_id, stock, begin_time, end_time
		FROM seckill_vouchers
		WHERE voucher_id = $1`

	var rm readmodel.SeckillVoucherRM
	err := r.db.QueryRow(ctx, query, voucherID).
		Scan(&rm.VoucherID, &rm.Stock, &rm.BeginTime, &rm.EndTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("seckill voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seckill voucher", err)
	}
	return &rm, nil
}

// DecrementStock applies the guarded durable decrement. It reports false
// when stock was already exhausted, without error.
func (r *VoucherRepository) DecrementStock(ctx context.Context, tx db.DBTX, voucherID int64) (bool, error) {
	const query = `
		UPDATE seckill_vouchers
		SET stock = stock - 1
		WHERE voucher_id = $1 AND stock > 0`

	tag, err := tx.Exec(ctx, query, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement voucher stock", err)
	}
	return tag.RowsAffected() > 0, nil
}
