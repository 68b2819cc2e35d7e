package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lumeo-app/backend/pkg/dto"
	groupsvc "github.com/lumeo-app/backend/pkg/service/group"
)

// AddMemberRequest names the user to add to a group.
type AddMemberRequest struct {
	Username string `json:"nombreUsuario" validate:"required"`
}

// GroupRoutes mounts the group resource.
func GroupRoutes(app *fiber.App, groups *groupsvc.Service) {
	r := app.Group("/api/grupos")

	r.Post("/", CreateGroup(groups))
	r.Post("/crear-con-usuarios", CreateGroup(groups))
	r.Get("/verificar-usuario/:username", VerifyUsername(groups))
	r.Get("/usuario/:id", UserGroups(groups))
	r.Get("/:id", GetGroup(groups))
	r.Get("/:id/con-miembros", GetGroup(groups))
	r.Delete("/:id", DeleteGroup(groups))
	r.Post("/:id/agregar-miembro", AddGroupMember(groups))
	r.Delete("/:id/miembro/:userId", RemoveGroupMember(groups))
}

func CreateGroup(groups *groupsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.CreateGroup](c)
		if input == nil {
			return err
		}
		result, err := groups.CreateWithMembers(c.Context(), input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	}
}

func VerifyUsername(groups *groupsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		check, err := groups.VerifyUsername(c.Context(), c.Params("username"))
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(check)
	}
}

func GetGroup(groups *groupsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		result, err := groups.GetWithMembers(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func DeleteGroup(groups *groupsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := groups.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func AddGroupMember(groups *groupsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		input, err := BindAndValidate[AddMemberRequest](c)
		if input == nil {
			return err
		}
		member, err := groups.AddMemberByUsername(c.Context(), id, input.Username)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(member)
	}
}

func RemoveGroupMember(groups *groupsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		userID, err := ParamUint(c, "userId")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := groups.RemoveMember(c.Context(), id, userID); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
