package domain

// SymbolPosition says whether a currency symbol is rendered before or
// after the amount ("$10" vs "10 €"). The wire values match the API.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "ANTES"
	SymbolAfter  SymbolPosition = "DESPUES"
)

// Currency is reference data, rarely mutated after seeding.
type Currency struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Description    string         `gorm:"size:100" json:"descripcion"`
	ISOCode        string         `gorm:"column:iso_code;size:3;uniqueIndex;not null" json:"iso"`
	Symbol         string         `gorm:"size:8" json:"simbolo"`
	SymbolPosition SymbolPosition `gorm:"size:10;default:'DESPUES'" json:"posicionSimbolo"`
}

// Fallback display currency used whenever a user has none configured.
const (
	FallbackISOCode = "EUR"
	FallbackSymbol  = "€"
)

// FallbackSymbolPosition is the symbol position of the fallback currency.
const FallbackSymbolPosition = SymbolAfter
