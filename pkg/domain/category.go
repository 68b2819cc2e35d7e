package domain

// Category labels transactions. Non-custom categories are shared by all
// users; custom ones belong to their owner. The visible set for a user
// is all non-custom categories plus that user's custom ones.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100" json:"nombre"`
	IsCustom bool   `gorm:"default:false" json:"esPersonalizada"`
	UserID   *uint  `json:"idUsuario"`
	Icon     string `gorm:"size:50" json:"icono"`
	Color    string `gorm:"size:9" json:"color"`
}
