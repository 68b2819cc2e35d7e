package exchange_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/lumeo-app/backend/infra/cache"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	table   *exchange.RateTable
	err     error
	fetches int
}

func (s *stubSource) FetchRates(ctx context.Context, base string) (*exchange.RateTable, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func eurTable() *exchange.RateTable {
	return &exchange.RateTable{
		Base:      "EUR",
		Rates:     map[string]float64{"USD": 1.0856, "GBP": 0.8531},
		FetchedAt: time.Now(),
	}
}

func newConverter(source exchange.RateSource) *exchange.Converter {
	return exchange.NewConverter(source, cache.NewMemoryRateCache(time.Hour), slog.Default())
}

func TestConverter_Convert(t *testing.T) {
	ctx := context.Background()

	t.Run("same currency is identity without a fetch", func(t *testing.T) {
		source := &stubSource{table: eurTable()}
		conv := newConverter(source)

		for _, amount := range []float64{100, 0, -42.5} {
			got, err := conv.Convert(ctx, amount, "EUR", "EUR")
			require.NoError(t, err)
			assert.Equal(t, amount, got)
		}
		assert.Zero(t, source.fetches)
	})

	t.Run("converts and rounds to two decimals", func(t *testing.T) {
		conv := newConverter(&stubSource{table: eurTable()})

		got, err := conv.Convert(ctx, 100, "EUR", "USD")
		require.NoError(t, err)
		assert.Equal(t, 108.56, got)

		got, err = conv.Convert(ctx, 33.33, "EUR", "GBP")
		require.NoError(t, err)
		assert.Equal(t, 28.43, got) // 33.33 * 0.8531 = 28.4338...
	})

	t.Run("missing destination rate is ErrRateUnavailable", func(t *testing.T) {
		conv := newConverter(&stubSource{table: eurTable()})

		_, err := conv.Convert(ctx, 10, "EUR", "JPY")
		assert.ErrorIs(t, err, exchange.ErrRateUnavailable)
	})

	t.Run("fetch failure is ErrRateUnavailable", func(t *testing.T) {
		conv := newConverter(&stubSource{err: errors.New("provider down")})

		_, err := conv.Convert(ctx, 10, "EUR", "USD")
		assert.ErrorIs(t, err, exchange.ErrRateUnavailable)
	})

	t.Run("at most one fetch per source currency within TTL", func(t *testing.T) {
		source := &stubSource{table: eurTable()}
		conv := newConverter(source)

		_, err := conv.Convert(ctx, 10, "EUR", "USD")
		require.NoError(t, err)
		_, err = conv.Convert(ctx, 20, "EUR", "GBP")
		require.NoError(t, err)

		assert.Equal(t, 1, source.fetches)
	})
}

func TestConverter_ConvertOrOriginal(t *testing.T) {
	ctx := context.Background()

	t.Run("returns converted value on success", func(t *testing.T) {
		conv := newConverter(&stubSource{table: eurTable()})
		assert.Equal(t, 108.56, conv.ConvertOrOriginal(ctx, 100, "EUR", "USD"))
	})

	t.Run("fails open on provider outage", func(t *testing.T) {
		conv := newConverter(&stubSource{err: errors.New("network error")})
		assert.Equal(t, 100.0, conv.ConvertOrOriginal(ctx, 100, "EUR", "USD"))
	})

	t.Run("fails open on missing rate", func(t *testing.T) {
		conv := newConverter(&stubSource{table: eurTable()})
		assert.Equal(t, 55.5, conv.ConvertOrOriginal(ctx, 55.5, "EUR", "JPY"))
	})
}
