package readmodel

import "time"

// SeckillVoucherRM is the serializable projection of a flash-sale voucher,
// shared by the durable repository and the cache layer.
type SeckillVoucherRM struct {
	VoucherID int64     `json:"voucherId"`
	Stock     int32     `json:"stock"`
	BeginTime time.Time `json:"beginTime"`
	EndTime   time.Time `json:"endTime"`
}

// ShopRM is the serializable projection of a shop row for the cached read
// path.
type ShopRM struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
