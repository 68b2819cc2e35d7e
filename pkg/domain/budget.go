package domain

import "time"

// Budget is a monthly spending limit. Month is the typed calendar month
// (1-12); localized month names exist only as display-only derived
// values in the DTO layer.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Month     int       `gorm:"not null;check:month >= 1 AND month <= 12" json:"mes"`
	Year      int       `gorm:"not null" json:"anio"`
	Amount    float64   `json:"cantidad"`
	UserID    uint      `gorm:"index;not null" json:"idUsuario"`
	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaModificacion"`
}
