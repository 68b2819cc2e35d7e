package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns transactions, goals and budgets. CurrencyID is the display
// currency: changing it never rewrites stored amounts, it only changes
// the target currency used at read time.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UID        uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"uid"`
	Username   string    `gorm:"size:50;uniqueIndex" json:"nombreUsuario"`
	Name       string    `gorm:"size:100" json:"nombre"`
	Surname    string    `gorm:"size:100" json:"apellido"`
	Email      string    `gorm:"size:255;uniqueIndex" json:"email"`
	Language   string    `gorm:"size:10" json:"idioma"`
	CurrencyID *uint     `json:"idDivisa"`
	CreatedAt  time.Time `json:"fechaCreacion"`
	UpdatedAt  time.Time `json:"fechaModificacion"`
}
