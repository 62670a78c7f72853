package repository

import (
	"context"
	"errors"

	"flashsale-core/internal/infra"
	"flashsale-core/internal/infra/db"
	"flashsale-core/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

type ShopRepository struct {
	db db.DBTX
}

func NewShopRepository(pool db.DBTX) *ShopRepository {
	return &ShopRepository{db: pool}
}

func (r *ShopRepository) FindByID(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	const query = `
		SELECT id, name, address
		FROM shops
		WHERE id = $1`

	var rm readmodel.ShopRM
	err := r.db.QueryRow(ctx, query, id).Scan(&rm.ID, &rm.Name, &rm.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}
	return &rm, nil
}

func (r *ShopRepository) Update(ctx context.Context, tx db.DBTX, shop readmodel.ShopRM) error {
	const query = `
		UPDATE shops
		SET name = $2, address = $3
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, shop.ID, shop.Name, shop.Address)
	if err != nil {
		return infra.WrapRepoErr("failed to update shop", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	return nil
}
