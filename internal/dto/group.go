package dto

import "youth-connect/backend/internal/model"

// ── 小组模块 DTO ──

// CreateGroupRequest 创建小组请求
type CreateGroupRequest struct {
	Name        string `json:"name"        binding:"required,max=128"`
	Description string `json:"description" binding:"required"`
	LeaderID    *uint  `json:"leaderId"`
}

// JoinGroupRequest 申请加入小组
// MemberID 为空时使用当前账号的成员档案
type JoinGroupRequest struct {
	MemberID *uint `json:"memberId"`
}

// UpdateGroupMemberStatusRequest 审批入组申请
type UpdateGroupMemberStatusRequest struct {
	Status model.GroupMemberStatus `json:"status" binding:"required,oneof=pending approved"`
}
