package model

// Role 账号角色
type Role string

const (
	RoleMember      Role = "member"
	RoleAdmin       Role = "admin"
	RoleSystemAdmin Role = "system_admin"
)

// Roles 全部角色
var Roles = []Role{RoleMember, RoleAdmin, RoleSystemAdmin}

// Valid 是否为已知角色
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

// IsPrivileged 非 member 角色（admin / system_admin）
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSystemAdmin
}

func (r Role) String() string { return string(r) }
