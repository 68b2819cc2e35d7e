package cache

import (
	"testing"
	"time"

	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(base string) *exchange.RateTable {
	return &exchange.RateTable{
		Base:      base,
		Rates:     map[string]float64{"USD": 1.1},
		FetchedAt: time.Now(),
	}
}

func TestMemoryRateCache(t *testing.T) {
	t.Run("miss on empty cache", func(t *testing.T) {
		c := NewMemoryRateCache(time.Hour)
		got, ok := c.Get("EUR")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("hit while fresh", func(t *testing.T) {
		c := NewMemoryRateCache(time.Hour)
		c.Put("EUR", table("EUR"))

		got, ok := c.Get("EUR")
		require.True(t, ok)
		assert.Equal(t, "EUR", got.Base)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		c := NewMemoryRateCache(time.Hour)
		c.Put("EUR", table("EUR"))

		c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, ok := c.Get("EUR")
		assert.False(t, ok)
	})

	t.Run("put overwrites", func(t *testing.T) {
		c := NewMemoryRateCache(time.Hour)
		c.Put("EUR", table("EUR"))
		fresh := &exchange.RateTable{Base: "EUR", Rates: map[string]float64{"USD": 1.2}}
		c.Put("EUR", fresh)

		got, ok := c.Get("EUR")
		require.True(t, ok)
		assert.Equal(t, 1.2, got.Rates["USD"])
	})

	t.Run("clear empties everything", func(t *testing.T) {
		c := NewMemoryRateCache(time.Hour)
		c.Put("EUR", table("EUR"))
		c.Put("GBP", table("GBP"))
		c.Clear()

		_, ok := c.Get("EUR")
		assert.False(t, ok)
		_, ok = c.Get("GBP")
		assert.False(t, ok)
	})

	t.Run("concurrent get and put", func(t *testing.T) {
		c := NewMemoryRateCache(time.Hour)
		done := make(chan struct{})
		for i := 0; i < 8; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				for j := 0; j < 100; j++ {
					c.Put("EUR", table("EUR"))
					c.Get("EUR")
				}
			}()
		}
		for i := 0; i < 8; i++ {
			<-done
		}
		_, ok := c.Get("EUR")
		assert.True(t, ok)
	})
}
