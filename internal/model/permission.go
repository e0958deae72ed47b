package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/bits"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Permission 细粒度能力标记（封闭集合）
type Permission uint8

const (
	PermCreateUser Permission = iota
	PermDeleteUser
	PermManageContent
	PermCreateAnnouncement
	PermDeleteAnnouncement
	PermManageMembers

	permissionCount
)

var permissionNames = [...]string{
	PermCreateUser:         "create_user",
	PermDeleteUser:         "delete_user",
	PermManageContent:      "manage_content",
	PermCreateAnnouncement: "create_announcement",
	PermDeleteAnnouncement: "delete_announcement",
	PermManageMembers:      "manage_members",
}

// 新增 Permission 常量而未补充名称表时编译失败
var _ = [1]struct{}{}[int(permissionCount)-len(permissionNames)]

func (p Permission) String() string {
	if p < permissionCount {
		return permissionNames[p]
	}
	return fmt.Sprintf("Permission(%d)", uint8(p))
}

// AllPermissions 按声明顺序返回全部权限
func AllPermissions() []Permission {
	out := make([]Permission, 0, permissionCount)
	for p := Permission(0); p < permissionCount; p++ {
		out = append(out, p)
	}
	return out
}

// UnknownPermissionError 未知权限名
type UnknownPermissionError struct {
	Name string
}

func (e *UnknownPermissionError) Error() string {
	return fmt.Sprintf("unknown permission %q", e.Name)
}

// ParsePermission 按名称解析权限
func ParsePermission(name string) (Permission, error) {
	for i, n := range permissionNames {
		if n == name {
			return Permission(i), nil
		}
	}
	return 0, &UnknownPermissionError{Name: name}
}

// PermissionSet 权限位集合
// JSON 与数据库中均表示为权限名数组，例如 ["create_user","manage_members"]
type PermissionSet uint64

// NewPermissionSet 由权限列表构造集合
func NewPermissionSet(perms ...Permission) PermissionSet {
	var s PermissionSet
	for _, p := range perms {
		s |= 1 << p
	}
	return s
}

// ParsePermissionSet 由权限名列表构造集合，遇到未知名称立即失败
func ParsePermissionSet(names []string) (PermissionSet, error) {
	var s PermissionSet
	for _, n := range names {
		p, err := ParsePermission(n)
		if err != nil {
			return 0, err
		}
		s |= 1 << p
	}
	return s, nil
}

// Has 是否包含权限
func (s PermissionSet) Has(p Permission) bool {
	return p < permissionCount && s&(1<<p) != 0
}

// Len 权限个数
func (s PermissionSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Names 按声明顺序返回权限名
func (s PermissionSet) Names() []string {
	names := make([]string, 0, s.Len())
	for p := Permission(0); p < permissionCount; p++ {
		if s.Has(p) {
			names = append(names, permissionNames[p])
		}
	}
	return names
}

func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParsePermissionSet(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value 实现 driver.Valuer
func (s PermissionSet) Value() (driver.Value, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner
func (s *PermissionSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = 0
		return nil
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("PermissionSet.Scan: unsupported type %T", src)
	}
}

// GormDBDataType PostgreSQL 使用 jsonb，其他方言使用 text
func (PermissionSet) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}
