package webapi

import (
	"reflect"

	"github.com/gofiber/fiber/v2"

	"github.com/lumeo-app/backend/pkg/repository"
)

// setID forces the path id onto the entity so a body cannot redirect
// an update to another row. All entities carry a uint ID field.
func setID(entity any, id uint) {
	f := reflect.ValueOf(entity).Elem().FieldByName("ID")
	if f.IsValid() && f.CanSet() && f.Kind() == reflect.Uint {
		f.SetUint(uint64(id))
	}
}

// RegisterCRUD mounts the standard CRUD routes for one entity type on
// a router group. Resources with behavior beyond plain persistence add
// their own routes on top of (or instead of) this set.
func RegisterCRUD[T any](r fiber.Router, repo repository.Repository[T]) {
	r.Get("/", func(c *fiber.Ctx) error {
		items, err := repo.List(c.Context())
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(items)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		item, err := repo.Get(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(item)
	})

	r.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[T](c)
		if input == nil {
			return err
		}
		if err := repo.Create(c.Context(), input); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if _, err := repo.Get(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		input, err := BindAndValidate[T](c)
		if input == nil {
			return err
		}
		setID(input, id)
		if err := repo.Update(c.Context(), input); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(input)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := repo.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
