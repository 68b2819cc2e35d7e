package domain

// Group is a set of users sharing expenses. The creator is stored as a
// scalar field and is implicitly a member.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"nombre"`
	Description string `gorm:"size:300" json:"descripcion"`
	CreatorID   uint   `json:"idCreador"`
}

// GroupMember joins users to groups.
type GroupMember struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"index:idx_group_member,unique" json:"idUsuario"`
	GroupID uint `gorm:"index:idx_group_member,unique" json:"idGrupo"`
}
