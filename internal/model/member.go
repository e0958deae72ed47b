package model

// MemberCategory 成员分组类别
type MemberCategory string

const (
	CategoryChildren MemberCategory = "children"
	CategoryYouth    MemberCategory = "youth"
	CategoryAdult    MemberCategory = "adult"
)

// Valid 是否为已知类别
func (c MemberCategory) Valid() bool {
	switch c {
	case CategoryChildren, CategoryYouth, CategoryAdult:
		return true
	}
	return false
}

// Member 成员档案，可关联一个登录账号
type Member struct {
	BaseModel
	UserID   *uint          `gorm:"uniqueIndex"                   json:"userId"`
	FullName string         `gorm:"type:varchar(128);not null"    json:"fullName"`
	Category MemberCategory `gorm:"type:varchar(20);not null;check:category IN ('children','youth','adult')" json:"category"`
	Email    *string        `gorm:"type:varchar(255)"             json:"email"`
	Phone    *string        `gorm:"type:varchar(50)"              json:"phone"`
	Address  *string        `gorm:"type:text"                     json:"address"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
