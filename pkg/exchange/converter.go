package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Converter converts amounts between currencies, consulting the cache
// first and falling back to the rate source on miss or expiry.
type Converter struct {
	source RateSource
	cache  RateCache
	logger *slog.Logger
}

var _ AmountConverter = (*Converter)(nil)

// NewConverter builds a converter. The cache is required; it is the only
// shared mutable state between in-flight requests.
func NewConverter(source RateSource, cache RateCache, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Convert converts amount from one ISO code to another, rounded to two
// decimal places. Same-currency conversions return the amount unchanged
// without touching the network. A missing destination rate or a failed
// fetch returns ErrRateUnavailable; the amount is never partially
// converted.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	table, ok := c.cache.Get(from)
	if !ok {
		fresh, err := c.source.FetchRates(ctx, from)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
		}
		c.cache.Put(from, fresh)
		table = fresh
	}

	rate, ok := table.Rate(to)
	if !ok {
		return 0, fmt.Errorf("%w: no rate %s->%s", ErrRateUnavailable, from, to)
	}

	return math.Round(amount*rate*100) / 100, nil
}

// ConvertOrOriginal is the fail-open form used by every read path: on
// any conversion failure it logs the error and returns the amount
// unconverted. A broken rate provider must never break a balance read.
func (c *Converter) ConvertOrOriginal(ctx context.Context, amount float64, from, to string) float64 {
	converted, err := c.Convert(ctx, amount, from, to)
	if err != nil {
		c.logger.Warn("currency conversion failed, using original amount",
			"from", from, "to", to, "amount", amount, "error", err)
		return amount
	}
	return converted
}
