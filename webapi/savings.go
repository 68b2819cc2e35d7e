package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	savingssvc "github.com/lumeo-app/backend/pkg/service/savings"
)

// SavingsRoutes mounts the savings-goal resource.
func SavingsRoutes(app *fiber.App, goals *savingssvc.Service) {
	r := app.Group("/api/metas-ahorro")

	r.Get("/usuario/uid/:uid", ListSavingsGoals(goals))
	r.Post("/usuario/uid/:uid", CreateSavingsGoal(goals))
	r.Put("/:id", UpdateSavingsGoal(goals))
	r.Delete("/:id", DeleteSavingsGoal(goals))
	r.Post("/:id/agregar-cantidad", AddContribution(goals))
}

func ListSavingsGoals(goals *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := uuid.Parse(c.Params("uid"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", "uid must be a valid UUID")
		}
		views, err := goals.ListByUserUID(c.Context(), uid)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(views)
	}
}

func CreateSavingsGoal(goals *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := uuid.Parse(c.Params("uid"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", "uid must be a valid UUID")
		}
		input, err := BindAndValidate[domain.SavingsGoal](c)
		if input == nil {
			return err
		}
		if err := goals.CreateForUID(c.Context(), uid, input); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	}
}

func UpdateSavingsGoal(goals *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		input, err := BindAndValidate[domain.SavingsGoal](c)
		if input == nil {
			return err
		}
		updated, err := goals.Update(c.Context(), id, input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteSavingsGoal(goals *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := goals.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func AddContribution(goals *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		input, err := BindAndValidate[dto.Contribution](c)
		if input == nil {
			return err
		}
		result, err := goals.AddContribution(c.Context(), id, input.Amount)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}
