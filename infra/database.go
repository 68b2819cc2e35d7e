// Package infra wires external resources: database connection, schema
// migration and reference-data seeding.
package infra

import (
	"errors"
	"time"

	"github.com/lumeo-app/backend/pkg/config"
	"github.com/lumeo-app/backend/pkg/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the Postgres connection with pool settings and
// an env-driven log level.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	databaseUrl := cnf.Url
	if databaseUrl == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Currency{},
		&domain.User{},
		&domain.Category{},
		&domain.TransactionType{},
		&domain.TransactionStatus{},
		&domain.Attachment{},
		&domain.Group{},
		&domain.GroupMember{},
		&domain.GroupTransaction{},
		&domain.Transaction{},
		&domain.SavingsGoal{},
		&domain.Budget{},
	)
}

// Seed inserts the reference rows the domain constants point at, a
// minimal currency set and the shared category catalog. Existing rows
// are left untouched.
func Seed(db *gorm.DB) error {
	types := []domain.TransactionType{
		{ID: domain.TypeIncome, Description: "Ingreso"},
		{ID: domain.TypeExpense, Description: "Gasto"},
	}
	for _, t := range types {
		if err := db.FirstOrCreate(&domain.TransactionType{}, t).Error; err != nil {
			return err
		}
	}

	statuses := []domain.TransactionStatus{
		{ID: domain.StatusPending, Description: "Pendiente"},
		{ID: domain.StatusCompleted, Description: "Completado"},
	}
	for _, s := range statuses {
		if err := db.FirstOrCreate(&domain.TransactionStatus{}, s).Error; err != nil {
			return err
		}
	}

	currencies := []domain.Currency{
		{Description: "Euro", ISOCode: "EUR", Symbol: "€", SymbolPosition: domain.SymbolAfter},
		{Description: "US Dollar", ISOCode: "USD", Symbol: "$", SymbolPosition: domain.SymbolBefore},
		{Description: "British Pound", ISOCode: "GBP", Symbol: "£", SymbolPosition: domain.SymbolBefore},
		{Description: "Japanese Yen", ISOCode: "JPY", Symbol: "¥", SymbolPosition: domain.SymbolBefore},
		{Description: "Swiss Franc", ISOCode: "CHF", Symbol: "CHF", SymbolPosition: domain.SymbolBefore},
	}
	for _, c := range currencies {
		err := db.Where(domain.Currency{ISOCode: c.ISOCode}).FirstOrCreate(&c).Error
		if err != nil {
			return err
		}
	}

	for _, cat := range defaultCategories {
		err := db.Where(domain.Category{Name: cat.Name, IsCustom: false}).FirstOrCreate(&cat).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// defaultCategories is the shared catalog every user sees from the
// first start. Custom categories are created per user through the API.
var defaultCategories = []domain.Category{
	{Name: "Hogar", Icon: "home"},
	{Name: "Ocio", Icon: "game-controller"},
	{Name: "Transporte", Icon: "car"},
	{Name: "Comida", Icon: "restaurant"},
	{Name: "Salud", Icon: "medkit"},
	{Name: "Educación", Icon: "school"},
	{Name: "Compras", Icon: "cart"},
	{Name: "Viajes", Icon: "airplane"},
	{Name: "Servicios", Icon: "settings"},
	{Name: "Otros", Icon: "ellipsis-horizontal"},
}
