package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumeo-app/backend/pkg/domain"
	categorysvc "github.com/lumeo-app/backend/pkg/service/category"
)

// CategoryRoutes mounts the category resource.
func CategoryRoutes(app *fiber.App, categories *categorysvc.Service) {
	r := app.Group("/api/categorias")

	r.Get("/usuario/:userId", VisibleCategories(categories))
	r.Post("/", CreateCategory(categories))
	r.Get("/:id", GetCategory(categories))
	r.Put("/:id", UpdateCategory(categories))
	r.Delete("/:id", DeleteCategory(categories))
}

func VisibleCategories(categories *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := ParamUint(c, "userId")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		visible, err := categories.Visible(c.Context(), userID)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(visible)
	}
}

func CreateCategory(categories *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[domain.Category](c)
		if input == nil {
			return err
		}
		if err := categories.Create(c.Context(), input); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	}
}

func GetCategory(categories *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		cat, err := categories.Get(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(cat)
	}
}

func UpdateCategory(categories *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		input, err := BindAndValidate[domain.Category](c)
		if input == nil {
			return err
		}
		updated, err := categories.Update(c.Context(), id, input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteCategory(categories *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := categories.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
