package order

import (
	"errors"
	"time"
)

var ErrMissingID = errors.New("order requires a generated id")

// VoucherOrder is the durable record of a successful reservation. The store
// enforces at most one order per (userID, voucherID).
type VoucherOrder struct {
	id        int64
	userID    int64
	voucherID int64
	createdAt time.Time
}

func NewVoucherOrder(id, userID, voucherID int64, createdAt time.Time) (*VoucherOrder, error) {
	if id == 0 {
		return nil, ErrMissingID
	}
	return &VoucherOrder{
		id:        id,
		userID:    userID,
		voucherID: voucherID,
		createdAt: createdAt,
	}, nil
}

func (o *VoucherOrder) ID() int64            { return o.id }
func (o *VoucherOrder) UserID() int64        { return o.userID }
func (o *VoucherOrder) VoucherID() int64     { return o.voucherID }
func (o *VoucherOrder) CreatedAt() time.Time { return o.createdAt }
