package provider

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumeo-app/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*ExchangeRateAPI, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewExchangeRateAPI(&config.ExchangeRate{
		BaseURL:     srv.URL,
		HTTPTimeout: 2 * time.Second,
	}, slog.Default())
	return client, srv
}

func TestExchangeRateAPI_FetchRates(t *testing.T) {
	t.Run("parses rate table", func(t *testing.T) {
		client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latest/EUR", r.URL.Path)
			w.Write([]byte(`{"base":"EUR","rates":{"USD":1.1,"GBP":0.85}}`)) //nolint:errcheck
		})

		table, err := client.FetchRates(context.Background(), "EUR")
		require.NoError(t, err)
		assert.Equal(t, "EUR", table.Base)
		assert.Equal(t, 1.1, table.Rates["USD"])
		assert.Equal(t, 0.85, table.Rates["GBP"])
		assert.False(t, table.FetchedAt.IsZero())
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.FetchRates(context.Background(), "EUR")
		assert.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`)) //nolint:errcheck
		})

		_, err := client.FetchRates(context.Background(), "EUR")
		assert.Error(t, err)
	})

	t.Run("empty rate table is an error", func(t *testing.T) {
		client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{}}`)) //nolint:errcheck
		})

		_, err := client.FetchRates(context.Background(), "EUR")
		assert.Error(t, err)
	})

	t.Run("cancelled context aborts the call", func(t *testing.T) {
		client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.FetchRates(ctx, "EUR")
		assert.Error(t, err)
	})
}
