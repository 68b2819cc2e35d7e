// Package app wires the services from their shared dependencies. It is
// the composition root used by the server entrypoint and the end-to-end
// tests alike.
package app

import (
	"log/slog"

	"github.com/lumeo-app/backend/pkg/config"
	"github.com/lumeo-app/backend/pkg/exchange"
	"github.com/lumeo-app/backend/pkg/repository"
	budgetsvc "github.com/lumeo-app/backend/pkg/service/budget"
	categorysvc "github.com/lumeo-app/backend/pkg/service/category"
	groupsvc "github.com/lumeo-app/backend/pkg/service/group"
	groupexpensesvc "github.com/lumeo-app/backend/pkg/service/groupexpense"
	reportsvc "github.com/lumeo-app/backend/pkg/service/report"
	savingssvc "github.com/lumeo-app/backend/pkg/service/savings"
	transactionsvc "github.com/lumeo-app/backend/pkg/service/transaction"
	usersvc "github.com/lumeo-app/backend/pkg/service/user"
)

// Deps are the shared dependencies every service builds on.
type Deps struct {
	Store     repository.Store
	Converter exchange.AmountConverter
	RateCache exchange.RateCache
	Logger    *slog.Logger
}

// App bundles the wired services.
type App struct {
	Deps   *Deps
	Config *config.App

	UserService         *usersvc.Service
	TransactionService  *transactionsvc.Service
	ReportService       *reportsvc.Service
	GroupService        *groupsvc.Service
	GroupExpenseService *groupexpensesvc.Service
	SavingsService      *savingssvc.Service
	BudgetService       *budgetsvc.Service
	CategoryService     *categorysvc.Service
}

// New wires every service from deps.
func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:                deps,
		Config:              cfg,
		UserService:         usersvc.NewService(deps.Store, deps.Logger),
		TransactionService:  transactionsvc.NewService(deps.Store, deps.Converter, deps.Logger),
		ReportService:       reportsvc.NewService(deps.Store, deps.Converter, deps.Logger),
		GroupService:        groupsvc.NewService(deps.Store, deps.Logger),
		GroupExpenseService: groupexpensesvc.NewService(deps.Store, deps.Converter, deps.Logger),
		SavingsService:      savingssvc.NewService(deps.Store, deps.Converter, deps.Logger),
		BudgetService:       budgetsvc.NewService(deps.Store, deps.Converter, deps.Logger),
		CategoryService:     categorysvc.NewService(deps.Store),
	}
}
