package model

import "time"

// BaseModel 自增主键与创建时间（所有实体嵌入，GroupMember 除外）
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"  json:"createdAt"`
}

// AllModels 返回全部持久化模型，按外键依赖顺序排列（供 AutoMigrate 使用）
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Member{},
		&Announcement{},
		&Comment{},
		&Group{},
		&GroupMember{},
	}
}
