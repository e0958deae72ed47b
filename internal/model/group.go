package model

// Group 小组
type Group struct {
	BaseModel
	Name        string `gorm:"type:varchar(128);not null" json:"name"`
	Description string `gorm:"type:text;not null"         json:"description"`
	LeaderID    *uint  `gorm:"index"                      json:"leaderId"`
	MemberCount int    `gorm:"not null;default:0"         json:"memberCount"`

	Leader *User `gorm:"foreignKey:LeaderID;constraint:OnDelete:SET NULL" json:"-"`
}
