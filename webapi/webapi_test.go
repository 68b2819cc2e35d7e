package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeo-app/backend/infra/cache"
	"github.com/lumeo-app/backend/pkg/app"
	"github.com/lumeo-app/backend/pkg/config"
	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/testutils"
	"github.com/lumeo-app/backend/webapi"
)

func ptrU(v uint) *uint { return &v }

type fixture struct {
	app   *fiber.App
	store *testutils.FakeStore
	cache *cache.MemoryRateCache
}

func newFixture() *fixture {
	store := testutils.NewFakeStore()
	store.CurrencyRows = []*domain.Currency{
		{ID: 1, ISOCode: "EUR", Symbol: "€", SymbolPosition: domain.SymbolAfter},
		{ID: 2, ISOCode: "USD", Symbol: "$", SymbolPosition: domain.SymbolBefore},
	}
	store.UserRows = []*domain.User{
		{ID: 1, Username: "ana", Name: "Ana", CurrencyID: ptrU(1)},
		{ID: 2, Username: "luis", Name: "Luis", CurrencyID: ptrU(2)},
	}

	rateCache := cache.NewMemoryRateCache(time.Hour)
	converter := &testutils.FixedRateConverter{Rates: map[string]float64{"USD/EUR": 0.9, "EUR/USD": 1.1}}

	a := app.New(&app.Deps{
		Store:     store,
		Converter: converter,
		RateCache: rateCache,
	}, &config.App{Cors: &config.Cors{AllowOrigins: "*"}})

	return &fixture{app: webapi.SetupApp(a), store: store, cache: rateCache}
}

func (f *fixture) request(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture()
	resp := f.request(t, fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetUser_SpanishFieldNames(t *testing.T) {
	f := newFixture()
	resp := f.request(t, fiber.MethodGet, "/api/usuarios/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, "ana", body["nombreUsuario"])
	assert.Equal(t, float64(1), body["idDivisa"])
}

func TestGetUser_NotFound(t *testing.T) {
	f := newFixture()
	resp := f.request(t, fiber.MethodGet, "/api/usuarios/99", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/problem+json")
}

func TestFinancialSummary_UnknownUserStillRenders(t *testing.T) {
	f := newFixture()
	resp := f.request(t, fiber.MethodGet, "/api/usuarios/42/resumen-financiero", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, "EUR", body["codigoDivisa"])
	assert.Equal(t, "0", body["saldoTotal"])
}

func TestCreateTransaction_StampsCurrency(t *testing.T) {
	f := newFixture()
	resp := f.request(t, fiber.MethodPost, "/api/transacciones", map[string]any{
		"titulo":    "Café",
		"importe":   2.5,
		"idUsuario": 1,
		"idTipo":    2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, float64(1), body["idDivisaOriginal"])
}

func TestContribution_ExceedsTarget(t *testing.T) {
	f := newFixture()
	f.store.GoalRows = []*domain.SavingsGoal{
		{ID: 1, Title: "Vacaciones", TargetAmount: 100, CurrentAmount: 90, UserID: 1, OriginalCurrencyID: ptrU(1)},
	}
	resp := f.request(t, fiber.MethodPost, "/api/metas-ahorro/1/agregar-cantidad", map[string]any{
		"cantidad": 50,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 90.0, f.store.GoalRows[0].CurrentAmount)
}

func TestValidationFailureIsBadRequest(t *testing.T) {
	f := newFixture()
	resp := f.request(t, fiber.MethodPost, "/api/transacciones-grupales", map[string]any{
		"importeTotal": 100,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/problem+json")

	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Validation failed", body["title"])
	assert.Equal(t, float64(fiber.StatusBadRequest), body["status"])
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	f := newFixture()
	req := httptest.NewRequest(fiber.MethodPost, "/api/transacciones", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGroupTransactionCreate_SplitsShares(t *testing.T) {
	f := newFixture()
	f.store.GroupRows = []*domain.Group{{ID: 7, Name: "Piso", CreatorID: 1}}
	resp := f.request(t, fiber.MethodPost, "/api/transacciones-grupales", map[string]any{
		"titulo":       "Cena",
		"importeTotal": 60,
		"idGrupo":      7,
		"transaccionesIndividuales": []map[string]any{
			{"idUsuario": 1, "importe": 40},
			{"idUsuario": 2, "importe": 20},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, f.store.TransactionRows, 2)
}

func TestClearRateCache(t *testing.T) {
	f := newFixture()
	f.cache.Put("EUR", &exchange.RateTable{Base: "EUR", Rates: map[string]float64{"USD": 1.1}})

	resp := f.request(t, fiber.MethodDelete, "/api/divisas/cache", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, ok := f.cache.Get("EUR")
	assert.False(t, ok)
}

func TestReferenceCRUD(t *testing.T) {
	f := newFixture()

	resp := f.request(t, fiber.MethodPost, "/api/tipos-transaccion", map[string]any{
		"descripcion": "Ingreso",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[domain.TransactionType](t, resp)
	require.NotZero(t, created.ID)

	resp = f.request(t, fiber.MethodGet, "/api/tipos-transaccion", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]domain.TransactionType](t, resp)
	assert.Len(t, list, 1)
}
