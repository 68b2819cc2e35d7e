package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumeo-app/backend/pkg/domain"
	transactionsvc "github.com/lumeo-app/backend/pkg/service/transaction"
)

// TransactionRoutes mounts the transaction resource. Converted
// per-user listings are also reachable under the user resource.
func TransactionRoutes(app *fiber.App, transactions *transactionsvc.Service) {
	r := app.Group("/api/transacciones")

	r.Post("/", CreateTransaction(transactions))
	r.Get("/usuario/:id", UserTransactions(transactions))
	r.Get("/usuario/:id/ultimos-gastos", LastExpenses(transactions))
	r.Get("/:id", GetTransaction(transactions))
	r.Put("/:id", UpdateTransaction(transactions))
	r.Delete("/:id", DeleteTransaction(transactions))
}

func CreateTransaction(transactions *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[domain.Transaction](c)
		if input == nil {
			return err
		}
		if err := transactions.Create(c.Context(), input); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	}
}

func GetTransaction(transactions *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		t, err := transactions.Get(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(t)
	}
}

func UpdateTransaction(transactions *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		input, err := BindAndValidate[domain.Transaction](c)
		if input == nil {
			return err
		}
		updated, err := transactions.Update(c.Context(), id, input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteTransaction(transactions *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := transactions.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
