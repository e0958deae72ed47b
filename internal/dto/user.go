package dto

import "youth-connect/backend/internal/model"

// ── 用户模块 DTO ──

// CreateUserRequest 创建账号请求
type CreateUserRequest struct {
	Username    string              `json:"username"    binding:"required,max=64"`
	Password    string              `json:"password"    binding:"required,max=72"`
	Role        model.Role          `json:"role"        binding:"omitempty,oneof=member admin system_admin"`
	Permissions model.PermissionSet `json:"permissions"`
}

// UpdatePermissionsRequest 更新权限请求（整体替换）
type UpdatePermissionsRequest struct {
	Permissions *model.PermissionSet `json:"permissions" binding:"required"`
}
