package domain

// Attachment is a stored receipt or document referenced by transactions.
type Attachment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FileName string `gorm:"size:255" json:"nombreArchivo"`
	URL      string `gorm:"size:500" json:"url"`
}
