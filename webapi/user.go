package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	groupsvc "github.com/lumeo-app/backend/pkg/service/group"
	reportsvc "github.com/lumeo-app/backend/pkg/service/report"
	transactionsvc "github.com/lumeo-app/backend/pkg/service/transaction"
	usersvc "github.com/lumeo-app/backend/pkg/service/user"
)

// UserRoutes mounts the user resource plus the per-user read models:
// reports, converted transactions and group membership.
func UserRoutes(
	app *fiber.App,
	users *usersvc.Service,
	reports *reportsvc.Service,
	transactions *transactionsvc.Service,
	groups *groupsvc.Service,
) {
	r := app.Group("/api/usuarios")

	r.Get("/", ListUsers(users))
	r.Post("/", CreateUser(users))
	r.Get("/uid/:uid", GetUserByUID(users))
	r.Put("/uid/:uid", UpdateUserByUID(users))
	r.Get("/:id", GetUser(users))
	r.Delete("/:id", DeleteUser(users))

	r.Get("/:id/resumen-financiero", FinancialSummary(reports))
	r.Get("/:id/gastos-por-categoria", ExpensesByCategory(reports))
	r.Get("/:id/evolucion-mensual", MonthlyEvolution(reports))
	r.Get("/:id/ultimos-gastos", LastExpenses(transactions))
	r.Get("/:id/transacciones", UserTransactions(transactions))
	r.Get("/:id/grupos", UserGroups(groups))
}

func ListUsers(users *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := users.List(c.Context())
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(list)
	}
}

func CreateUser(users *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[domain.User](c)
		if input == nil {
			return err
		}
		if err := users.Create(c.Context(), input); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(input)
	}
}

func GetUser(users *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		u, err := users.Get(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(u)
	}
}

func GetUserByUID(users *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := uuid.Parse(c.Params("uid"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", "uid must be a valid UUID")
		}
		u, err := users.GetByUID(c.Context(), uid)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(u)
	}
}

func UpdateUserByUID(users *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := uuid.Parse(c.Params("uid"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", "uid must be a valid UUID")
		}
		input, err := BindAndValidate[domain.User](c)
		if input == nil {
			return err
		}
		updated, err := users.UpdateByUID(c.Context(), uid, input)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func DeleteUser(users *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		if err := users.Delete(c.Context(), id); err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// FinancialSummary serves the dashboard headline. The endpoint never
// fails: when the aggregation breaks it serves a zeroed summary in the
// fallback currency so the dashboard can still render.
func FinancialSummary(reports *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		summary, err := reports.FinancialSummary(c.Context(), id)
		if err != nil {
			return c.JSON(dto.EmptyFinancialSummary())
		}
		return c.JSON(summary)
	}
}

func ExpensesByCategory(reports *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		result, err := reports.ExpensesByCategory(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func MonthlyEvolution(reports *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		months := c.QueryInt("meses", reportsvc.DefaultEvolutionMonths)
		result, err := reports.MonthlyEvolution(c.Context(), id, months)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func LastExpenses(transactions *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		limit := c.QueryInt("limite", transactionsvc.DefaultLastExpenses)
		result, err := transactions.LastExpenses(c.Context(), id, limit)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func UserTransactions(transactions *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		result, err := transactions.ListByUserConverted(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func UserGroups(groups *groupsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParamUint(c, "id")
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Bad Request", err.Error())
		}
		result, err := groups.ListForUser(c.Context(), id)
		if err != nil {
			return DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}
