package testutils

import (
	"context"
	"math"

	"github.com/lumeo-app/backend/pkg/exchange"
)

// FixedRateConverter implements exchange.AmountConverter from a static
// table keyed "FROM/TO". Pairs not in the table are unavailable, which
// exercises the fail-open paths.
type FixedRateConverter struct {
	Rates map[string]float64
}

var _ exchange.AmountConverter = (*FixedRateConverter)(nil)

func (c *FixedRateConverter) Convert(_ context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := c.Rates[from+"/"+to]
	if !ok {
		return 0, exchange.ErrRateUnavailable
	}
	return math.Round(amount*rate*100) / 100, nil
}

func (c *FixedRateConverter) ConvertOrOriginal(ctx context.Context, amount float64, from, to string) float64 {
	converted, err := c.Convert(ctx, amount, from, to)
	if err != nil {
		return amount
	}
	return converted
}
