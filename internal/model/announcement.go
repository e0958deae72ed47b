package model

// Announcement 公告
type Announcement struct {
	BaseModel
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Content  string `gorm:"type:text;not null"         json:"content"`
	AuthorID uint   `gorm:"not null;index"             json:"authorId"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}
