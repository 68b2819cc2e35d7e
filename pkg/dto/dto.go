// Package dto defines the response and request shapes of the REST API.
// JSON field names are kept in Spanish: they are the wire contract the
// frontend already speaks.
package dto

import (
	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/shopspring/decimal"
)

// FinancialSummary is the dashboard headline: all-time totals plus the
// current calendar month, everything converted to the user's display
// currency.
type FinancialSummary struct {
	TotalIncome    decimal.Decimal       `json:"totalIngresos"`
	TotalExpense   decimal.Decimal       `json:"totalGastos"`
	Balance        decimal.Decimal       `json:"saldoTotal"`
	CurrencyCode   string                `json:"codigoDivisa"`
	CurrencySymbol string                `json:"simboloDivisa"`
	SymbolPosition domain.SymbolPosition `json:"posicionSimbolo"`
	MonthlyIncome  decimal.Decimal       `json:"ingresosMensuales"`
	MonthlyExpense decimal.Decimal       `json:"gastosMensuales"`
	MonthlySavings decimal.Decimal       `json:"ahorroMensual"`
}

// EmptyFinancialSummary is the zeroed fallback summary served when the
// aggregation fails: the dashboard must render something.
func EmptyFinancialSummary() *FinancialSummary {
	return &FinancialSummary{
		CurrencyCode:   domain.FallbackISOCode,
		CurrencySymbol: domain.FallbackSymbol,
		SymbolPosition: domain.FallbackSymbolPosition,
	}
}

// CategoryExpense is one slice of the current-month expense chart.
type CategoryExpense struct {
	CategoryID   uint            `json:"idCategoria"`
	CategoryName string          `json:"nombreCategoria"`
	TotalExpense decimal.Decimal `json:"totalGasto"`
	Color        string          `json:"color"`
}

// MonthlyEvolution is one month of the income/expense history chart.
// The month names are display-only values derived from the typed month.
type MonthlyEvolution struct {
	Year         int             `json:"año"`
	Month        int             `json:"mes"`
	MonthName    string          `json:"nombreMes"`
	MonthAbbrev  string          `json:"abreviaturaMes"`
	TotalIncome  decimal.Decimal `json:"totalIngresos"`
	TotalExpense decimal.Decimal `json:"totalGastos"`
	Savings      decimal.Decimal `json:"saldo"`
}

// TransactionView is a transaction with its amount converted to the
// viewing user's display currency. For group-expense children it also
// carries the paying member's identity.
type TransactionView struct {
	ID                 uint                  `json:"id"`
	Title              string                `json:"titulo"`
	Amount             *float64              `json:"importe"`
	Date               domain.Date           `json:"fechaTransaccion"`
	Note               string                `json:"nota"`
	UserID             uint                  `json:"idUsuario"`
	CategoryID         *uint                 `json:"idCategoria"`
	GroupID            *uint                 `json:"idGrupo"`
	TypeID             *uint                 `json:"idTipo"`
	StatusID           *uint                 `json:"idEstado"`
	AttachmentID       *uint                 `json:"idAdjunto"`
	RecipientID        *uint                 `json:"idDestinatario"`
	RecipientAmount    *float64              `json:"importeDestinatario"`
	Username           string                `json:"nombreUsuario,omitempty"`
	Name               string                `json:"nombre,omitempty"`
	Surname            string                `json:"apellido,omitempty"`
	SymbolPosition     domain.SymbolPosition `json:"posicionSimbolo"`
	OriginalCurrencyID *uint                 `json:"idDivisaOriginal"`
}

// LastExpense is one entry of the recent-expenses widget.
type LastExpense struct {
	ID             uint                  `json:"id"`
	Title          string                `json:"titulo"`
	Amount         *float64              `json:"importe"`
	Date           domain.Date           `json:"fechaTransaccion"`
	Note           string                `json:"nota"`
	CategoryID     *uint                 `json:"idCategoria"`
	SymbolPosition domain.SymbolPosition `json:"posicionSimbolo"`
}

// GroupTransactionView is a shared-expense header with its total
// converted to the viewing user's display currency.
type GroupTransactionView struct {
	ID                   uint                  `json:"id"`
	Title                string                `json:"titulo"`
	Amount               float64               `json:"importe"`
	OriginalAmount       float64               `json:"importeOriginal"`
	Date                 domain.Date           `json:"fechaTransaccion"`
	Note                 string                `json:"nota"`
	GroupID              *uint                 `json:"idGrupo"`
	GroupName            string                `json:"nombreGrupo,omitempty"`
	CategoryID           *uint                 `json:"idCategoria"`
	CategoryName         string                `json:"nombreCategoria,omitempty"`
	TypeID               *uint                 `json:"idTipo"`
	TypeName             string                `json:"nombreTipo,omitempty"`
	AttachmentID         *uint                 `json:"idAdjunto"`
	OriginalCurrencyID   *uint                 `json:"idDivisaOriginal"`
	OriginalCurrencyCode string                `json:"codigoDivisaOriginal,omitempty"`
	SymbolPosition       domain.SymbolPosition `json:"posicionSimbolo"`
	Children             []TransactionView     `json:"transaccionesIndividuales,omitempty"`
}

// CreateGroupTransaction is the request to split a shared expense.
type CreateGroupTransaction struct {
	Title        string       `json:"titulo" validate:"required"`
	TotalAmount  float64      `json:"importeTotal" validate:"required"`
	Date         domain.Date  `json:"fechaTransaccion"`
	Note         string       `json:"nota"`
	GroupID      *uint        `json:"idGrupo"`
	CategoryID   *uint        `json:"idCategoria"`
	TypeID       *uint        `json:"idTipo"`
	AttachmentID *uint        `json:"idAdjunto"`
	Shares       []GroupShare `json:"transaccionesIndividuales" validate:"required,min=1,dive"`
}

// GroupShare is one member's part of a shared expense.
type GroupShare struct {
	UserID uint    `json:"idUsuario" validate:"required"`
	Amount float64 `json:"importe" validate:"required"`
}

// SavingsGoalView is a goal with both amounts converted to the owner's
// display currency.
type SavingsGoalView struct {
	ID                 uint                  `json:"id"`
	Title              string                `json:"titulo"`
	TargetAmount       float64               `json:"cantidadObjetivo"`
	CurrentAmount      float64               `json:"cantidadActual"`
	UserID             uint                  `json:"idUsuario"`
	OriginalCurrencyID *uint                 `json:"idDivisaOriginal"`
	CreatedAt          string                `json:"fechaCreacion"`
	UpdatedAt          string                `json:"fechaModificacion"`
	SymbolPosition     domain.SymbolPosition `json:"posicionSimbolo"`
}

// Contribution is the request body for adding to a savings goal.
type Contribution struct {
	Amount float64 `json:"cantidad" validate:"required,gt=0"`
}

// ContributionResult reports the goal state after a contribution.
type ContributionResult struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	CurrentAmount float64 `json:"nuevaCantidadActual"`
}

// BudgetView is a budget with the month's accumulated expenses.
type BudgetView struct {
	ID           uint    `json:"id"`
	Month        int     `json:"mes"`
	MonthName    string  `json:"nombreMes"`
	Year         int     `json:"anio"`
	Amount       float64 `json:"cantidad"`
	TotalExpense float64 `json:"totalGastos"`
	UserID       uint    `json:"idUsuario"`
}

// CreateGroup is the request to create a group with initial members
// resolved by username.
type CreateGroup struct {
	Name        string   `json:"nombre" validate:"required"`
	Description string   `json:"descripcion"`
	CreatorID   uint     `json:"idCreador" validate:"required"`
	Usernames   []string `json:"nombresUsuarios"`
}

// GroupMemberView identifies one member of a group.
type GroupMemberView struct {
	UserID   uint   `json:"idUsuario"`
	Username string `json:"nombreUsuario"`
	Name     string `json:"nombre"`
	Surname  string `json:"apellido"`
	Email    string `json:"email"`
}

// GroupWithMembers is a group plus its resolved member list.
type GroupWithMembers struct {
	Group   *domain.Group     `json:"grupo"`
	Members []GroupMemberView `json:"miembros"`
}

// UsernameCheck reports whether a username exists, for the member
// picker in group creation.
type UsernameCheck struct {
	Username string `json:"nombreUsuario"`
	Exists   bool   `json:"existe"`
	UserID   *uint  `json:"idUsuario"`
	Name     string `json:"nombre,omitempty"`
	Surname  string `json:"apellido,omitempty"`
}
