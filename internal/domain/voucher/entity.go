package voucher

import (
	"errors"
	"time"
)

var (
	ErrNotStarted    = errors.New("flash sale has not started")
	ErrEnded         = errors.New("flash sale has ended")
	ErrInvalidWindow = errors.New("sale window end must be after begin")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// SeckillVoucher is a voucher offered in a flash-sale window with limited
// stock. Stock is never mutated in memory; decrements happen only through
// the atomic store script or the guarded durable update.
type SeckillVoucher struct {
	voucherID int64
	stock     int32
	beginTime time.Time
	endTime   time.Time
}

func NewSeckillVoucher(voucherID int64, stock int32, beginTime, endTime time.Time) (*SeckillVoucher, error) {
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if !endTime.After(beginTime) {
		return nil, ErrInvalidWindow
	}
	return &SeckillVoucher{
		voucherID: voucherID,
		stock:     stock,
		beginTime: beginTime,
		endTime:   endTime,
	}, nil
}

// ValidateWindow checks the sale window against the given wall-clock time.
func (v *SeckillVoucher) ValidateWindow(now time.Time) error {
	if now.Before(v.beginTime) {
		return ErrNotStarted
	}
	if now.After(v.endTime) {
		return ErrEnded
	}
	return nil
}

func (v *SeckillVoucher) VoucherID() int64     { return v.voucherID }
func (v *SeckillVoucher) Stock() int32         { return v.stock }
func (v *SeckillVoucher) BeginTime() time.Time { return v.beginTime }
func (v *SeckillVoucher) EndTime() time.Time   { return v.endTime }
