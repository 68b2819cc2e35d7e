package domain

import "time"

// Transaction type and status identifiers. Reference rows are seeded at
// startup with these fixed IDs.
const (
	TypeIncome  uint = 1
	TypeExpense uint = 2

	StatusPending   uint = 1
	StatusCompleted uint = 2
)

// Transaction is a single income or expense record. Amount is always
// expressed in OriginalCurrencyID; the tag is stamped once at creation
// (defaulting to the owner's display currency) and immutable thereafter.
//
// RecipientID/RecipientAmount model the two-party special case: when a
// transaction has a recipient, the recipient-side reads use
// RecipientAmount instead of Amount.
type Transaction struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	Title              string   `gorm:"size:200" json:"titulo"`
	Amount             *float64 `json:"importe"`
	Date               Date     `gorm:"index" json:"fechaTransaccion"`
	Note               string   `gorm:"size:500" json:"nota"`
	UserID             uint     `gorm:"index;not null" json:"idUsuario"`
	RecipientID        *uint    `json:"idDestinatario"`
	RecipientAmount    *float64 `json:"importeDestinatario"`
	CategoryID         *uint    `json:"idCategoria"`
	GroupID            *uint    `json:"idGrupo"`
	TypeID             *uint    `json:"idTipo"`
	StatusID           *uint    `json:"idEstado"`
	AttachmentID       *uint    `json:"idAdjunto"`
	OriginalCurrencyID *uint    `gorm:"column:original_currency_id" json:"idDivisaOriginal"`
	GroupTransactionID *uint    `gorm:"index" json:"idTransaccionGrupal"`
}

// GroupTransaction is the header of a shared expense, split into one
// child Transaction per participating member. The header carries the
// first member's currency; each child carries its own member's currency.
type GroupTransaction struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"size:200" json:"titulo"`
	Amount             *float64  `json:"importe"`
	Date               Date      `json:"fechaTransaccion"`
	Note               string    `gorm:"size:500" json:"nota"`
	GroupID            *uint     `gorm:"index" json:"idGrupo"`
	CategoryID         *uint     `json:"idCategoria"`
	TypeID             *uint     `json:"idTipo"`
	AttachmentID       *uint     `json:"idAdjunto"`
	OriginalCurrencyID *uint     `gorm:"column:original_currency_id" json:"idDivisaOriginal"`
	CreatedAt          time.Time `json:"fechaCreacion"`
	UpdatedAt          time.Time `json:"fechaModificacion"`
}

// TransactionType is reference data: 1 = income, 2 = expense.
type TransactionType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"size:50" json:"descripcion"`
}

// TransactionStatus is reference data: 1 = pending, 2 = completed.
type TransactionStatus struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"size:50" json:"descripcion"`
}
