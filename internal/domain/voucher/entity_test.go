//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"flashsale-core/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeckillVoucher(t *testing.T) {
	begin := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	end := begin.Add(2 * time.Hour)

	t.Run("basic success case", func(t *testing.T) {
		v, err := voucher.NewSeckillVoucher(7, 100, begin, end)
		require.NoError(t, err)
		require.NotNil(t, v)

		assert.Equal(t, int64(7), v.VoucherID())
		assert.Equal(t, int32(100), v.Stock())
		assert.Equal(t, begin, v.BeginTime())
		assert.Equal(t, end, v.EndTime())
	})

	testCases := []struct {
		name  string
		stock int32
		begin time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "zero stock is allowed",
			stock: 0,
			begin: begin,
			end:   end,
		},
		{
			name:  "negative stock",
			stock: -1,
			begin: begin,
			end:   end,
			errIs: voucher.ErrNegativeStock,
		},
		{
			name:  "end before begin",
			stock: 10,
			begin: end,
			end:   begin,
			errIs: voucher.ErrInvalidWindow,
		},
		{
			name:  "end equals begin",
			stock: 10,
			begin: begin,
			end:   begin,
			errIs: voucher.ErrInvalidWindow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := voucher.NewSeckillVoucher(1, tc.stock, tc.begin, tc.end)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeckillVoucher_ValidateWindow(t *testing.T) {
	begin := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	end := begin.Add(2 * time.Hour)

	v, err := voucher.NewSeckillVoucher(1, 10, begin, end)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		now   time.Time
		errIs error
	}{
		{
			name:  "before window",
			now:   begin.Add(-time.Second),
			errIs: voucher.ErrNotStarted,
		},
		{
			name: "exactly at begin",
			now:  begin,
		},
		{
			name: "inside window",
			now:  begin.Add(time.Hour),
		},
		{
			name: "exactly at end",
			now:  end,
		},
		{
			name:  "after window",
			now:   end.Add(time.Second),
			errIs: voucher.ErrEnded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateWindow(tc.now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
