//go:build unit

package idgen_test

import (
	"testing"
	"time"

	"flashsale-core/internal/idgen"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	epoch := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("layout is seconds shifted left 32 bits or-ed with sequence", func(t *testing.T) {
		now := epoch.Add(100 * time.Second)
		id := idgen.Compose(now, 42)
		assert.Equal(t, int64(100)<<32|42, id)
	})

	t.Run("id at the epoch carries only the sequence", func(t *testing.T) {
		assert.Equal(t, int64(7), idgen.Compose(epoch, 7))
	})

	t.Run("ids never decrease within a day", func(t *testing.T) {
		now := epoch.Add(24 * time.Hour)
		prev := idgen.Compose(now, 1)
		for seq := int64(2); seq <= 1000; seq++ {
			id := idgen.Compose(now, seq)
			assert.Greater(t, id, prev)
			prev = id
		}
	})

	t.Run("a later second outranks any same-day sequence", func(t *testing.T) {
		now := epoch.Add(time.Hour)
		high := idgen.Compose(now, 1<<31)
		later := idgen.Compose(now.Add(time.Second), 1)
		assert.Greater(t, later, high)
	})

	t.Run("daily counter reset does not break ordering across midnight", func(t *testing.T) {
		lateNight := time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)
		midnight := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		// The sequence restarts at 1 on the new day but the timestamp half
		// dominates the comparison.
		assert.Greater(t, idgen.Compose(midnight, 1), idgen.Compose(lateNight, 999999))
	})
}
