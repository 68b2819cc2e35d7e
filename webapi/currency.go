package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/repository"
)

// CurrencyRoutes mounts the currency resource plus the operational
// endpoint that drops every cached rate table, forcing fresh provider
// fetches on the next conversion.
func CurrencyRoutes(app *fiber.App, store repository.Store, cache exchange.RateCache) {
	r := app.Group("/api/divisas")

	r.Delete("/cache", ClearRateCache(cache))
	RegisterCRUD[domain.Currency](r, store.Currencies())
}

func ClearRateCache(cache exchange.RateCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cache.Clear()
		return c.JSON(fiber.Map{"message": "Caché de tasas de cambio limpiada"})
	}
}

// ReferenceRoutes mounts the plain reference-data resources.
func ReferenceRoutes(app *fiber.App, store repository.Store) {
	RegisterCRUD(app.Group("/api/tipos-transaccion"), store.TransactionTypes())
	RegisterCRUD(app.Group("/api/estados-transaccion"), store.TransactionStatuses())
	RegisterCRUD(app.Group("/api/adjuntos"), store.Attachments())
}
