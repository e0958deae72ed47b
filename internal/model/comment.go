package model

// Comment 公告评论，ParentID 非空时为回复
type Comment struct {
	BaseModel
	AnnouncementID uint   `gorm:"not null;index" json:"announcementId"`
	ParentID       *uint  `gorm:"index"          json:"parentId"`
	AuthorID       uint   `gorm:"not null;index" json:"authorId"`
	Content        string `gorm:"type:text;not null" json:"content"`

	Author       *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"       json:"author,omitempty"`
	Announcement *Announcement `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"-"`
	Parent       *Comment      `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"       json:"-"`
}
