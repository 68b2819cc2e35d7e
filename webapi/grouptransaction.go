package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumeo-app/backend/pkg/dto"
	groupexpensesvc "github.com/lumeo-app/backend/pkg/service/groupexpense"
)

// GroupTransactionRoutes mounts the shared-expense resource. Read
// endpoints take the viewing user as the idUsuario query parameter so
// amounts come back in that user's display currency.
func GroupTransactionRoutes(app *fiber.App, expenses *groupexpensesvc.Service) {
	r := app.Group("/api/transacciones-grupales")

	r.Post("/", CreateGroupTransaction(expenses))
	r.Get("/grupo/:groupId", GroupTransactionsByGroup(expenses))
	r.Get("/:id", GroupTransactionDetail(expenses))
	r.Get("/:id/detalle", GroupTransactionDetail(expenses))
	r.Delete("/:id", DeleteGroupTransaction(expenses))
}

func CreateGroupTransaction(expenses *groupexpensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.CreateGroupTransaction](c)
		if input == nil {
			return err
		}
		header, err := expenses.Create(c.Context(), input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(header)
	}
}

func GroupTransactionsByGroup(expenses *groupexpensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupID, err := ParamUint(c, "groupId")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		viewerID := uint(c.QueryInt("idUsuario", 0))
		views, err := expenses.ListByGroup(c.Context(), groupID, viewerID)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(views)
	}
}

func GroupTransactionDetail(expenses *groupexpensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		viewerID := uint(c.QueryInt("idUsuario", 0))
		view, err := expenses.Detail(c.Context(), id, viewerID)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(view)
	}
}

func DeleteGroupTransaction(expenses *groupexpensesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := expenses.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
