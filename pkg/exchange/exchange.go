// Package exchange holds the currency conversion core: the rate table
// model, the cache and provider contracts, and the converter that all
// monetary reads go through.
package exchange

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrRateUnavailable indicates no usable rate could be obtained for a
	// currency pair. Callers on read paths degrade to the original amount.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// RateTable is the full set of rates quoted against one base currency,
// as returned by the provider. Tables are immutable once fetched.
type RateTable struct {
	Base      string
	Rates     map[string]float64
	FetchedAt time.Time
}

// Rate returns the rate for the destination code, if quoted.
func (t *RateTable) Rate(iso string) (float64, bool) {
	if t == nil || t.Rates == nil {
		return 0, false
	}
	r, ok := t.Rates[iso]
	return r, ok
}

// AmountConverter is the conversion contract the read paths depend on.
// ConvertOrOriginal never fails; on any rate problem it returns the
// amount unchanged so a provider outage cannot blank a screen.
type AmountConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
	ConvertOrOriginal(ctx context.Context, amount float64, from, to string) float64
}

// RateSource fetches a fresh rate table for a base currency. The network
// round-trip must be bounded by the context or an internal timeout.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (*RateTable, error)
}

// RateCache stores rate tables keyed by base currency with time-based
// expiry. Implementations must tolerate concurrent get/put without
// corruption; last-writer-wins per key is acceptable.
type RateCache interface {
	// Get returns a table only while it is fresh; an expired entry is a miss.
	Get(base string) (*RateTable, bool)
	Put(base string, table *RateTable)
	Clear()
}
