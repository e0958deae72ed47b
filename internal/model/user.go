package model

// User 登录账号
type User struct {
	BaseModel
	Username    string        `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Password    string        `gorm:"type:varchar(255);not null"            json:"-"`
	Role        Role          `gorm:"type:varchar(20);not null;default:member;check:role IN ('member','admin','system_admin')" json:"role"`
	Permissions PermissionSet `gorm:"not null"                                json:"permissions"`
}

// HasPermission 是否拥有指定权限
func (u *User) HasPermission(p Permission) bool {
	return u.Permissions.Has(p)
}
