package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lumeo-app/backend/pkg/domain"
	budgetsvc "github.com/lumeo-app/backend/pkg/service/budget"
)

// BudgetRoutes mounts the budget resource.
func BudgetRoutes(app *fiber.App, budgets *budgetsvc.Service) {
	r := app.Group("/api/presupuestos")

	r.Get("/usuario/uid/:uid", ListBudgets(budgets))
	r.Post("/usuario/uid/:uid", CreateBudget(budgets))
	r.Put("/:id", UpdateBudget(budgets))
	r.Delete("/:id", DeleteBudget(budgets))
}

func ListBudgets(budgets *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := uuid.Parse(c.Params("uid"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", "uid must be a valid UUID")
		}
		views, err := budgets.ListByUserUID(c.Context(), uid)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(views)
	}
}

func CreateBudget(budgets *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := uuid.Parse(c.Params("uid"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", "uid must be a valid UUID")
		}
		input, err := BindAndValidate[domain.Budget](c)
		if input == nil {
			return err
		}
		if err := budgets.CreateForUID(c.Context(), uid, input); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	}
}

func UpdateBudget(budgets *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		input, err := BindAndValidate[domain.Budget](c)
		if input == nil {
			return err
		}
		updated, err := budgets.Update(c.Context(), id, input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteBudget(budgets *budgetsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := budgets.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
