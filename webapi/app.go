package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/lumeo-app/backend/pkg/app"
)

// SetupApp builds the Fiber application with all routes mounted.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "lumeo",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	fiberApp.Use(requestid.New())
	fiberApp.Use(recover.New())

	allowOrigins := "*"
	if a.Config != nil && a.Config.Cors != nil {
		allowOrigins = a.Config.Cors.AllowOrigins
	}
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	UserRoutes(fiberApp, a.UserService, a.ReportService, a.TransactionService, a.GroupService)
	TransactionRoutes(fiberApp, a.TransactionService)
	GroupTransactionRoutes(fiberApp, a.GroupExpenseService)
	SavingsRoutes(fiberApp, a.SavingsService)
	BudgetRoutes(fiberApp, a.BudgetService)
	GroupRoutes(fiberApp, a.GroupService)
	CategoryRoutes(fiberApp, a.CategoryService)
	CurrencyRoutes(fiberApp, a.Deps.Store, a.Deps.RateCache)
	ReferenceRoutes(fiberApp, a.Deps.Store)

	return fiberApp
}
