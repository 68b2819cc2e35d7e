// Package provider contains clients for external services, currently
// the exchange-rate API consumed by the currency converter.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lumeo-app/backend/pkg/config"
	"github.com/lumeo-app/backend/pkg/exchange"
)

// ExchangeRateAPI fetches rate tables from an exchangerate-api style
// endpoint: GET {base_url}/latest/{ISO} -> {"rates": {ISO: n, ...}}.
// The provider is treated as untrusted; any shape deviation is an error
// and the converter fails open.
type ExchangeRateAPI struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type latestResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// NewExchangeRateAPI creates the client with a bounded request timeout.
func NewExchangeRateAPI(cfg *config.ExchangeRate, logger *slog.Logger) *ExchangeRateAPI {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExchangeRateAPI{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// FetchRates fetches the full rate table quoted against base.
func (p *ExchangeRateAPI) FetchRates(ctx context.Context, base string) (*exchange.RateTable, error) {
	url := fmt.Sprintf("%s/latest/%s", p.baseURL, base)
	p.logger.Debug("fetching exchange rates", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate provider returned no rates for %s", base)
	}

	return &exchange.RateTable{
		Base:      base,
		Rates:     body.Rates,
		FetchedAt: time.Now(),
	}, nil
}
