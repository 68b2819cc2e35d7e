package domain

import "time"

// SavingsGoal tracks progress towards a target amount. Both amounts are
// expressed in OriginalCurrencyID. The CurrentAmount <= TargetAmount
// invariant is enforced only by the contribution operation, not by
// direct updates.
type SavingsGoal struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"size:200" json:"titulo"`
	TargetAmount       float64   `json:"cantidadObjetivo"`
	CurrentAmount      float64   `json:"cantidadActual"`
	UserID             uint      `gorm:"index;not null" json:"idUsuario"`
	OriginalCurrencyID *uint     `gorm:"column:original_currency_id" json:"idDivisaOriginal"`
	CreatedAt          time.Time `json:"fechaCreacion"`
	UpdatedAt          time.Time `json:"fechaModificacion"`
}
