package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

// GroupHandler 小组模块 HTTP 处理器
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 创建 GroupHandler
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// ListGroups 小组列表
// GET /api/groups
func (h *GroupHandler) ListGroups(c *gin.Context) {
	list, err := h.groupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// CreateGroup 创建小组
// POST /api/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.Created(c, g)
}

// JoinGroup 申请加入小组，请求体可为空
// POST /api/groups/:id/members
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBindError(c, err)
		return
	}

	gm, err := h.groupSvc.Join(c.Request.Context(), actor, groupID, &req)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.Created(c, gm)
}

// ListGroupMembers 小组成员（附带成员档案）
// GET /api/groups/:id/members
func (h *GroupHandler) ListGroupMembers(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.groupSvc.ListMembers(c.Request.Context(), groupID)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, list)
}

// UpdateGroupMemberStatus 审批入组申请
// PATCH /api/group-members/:id/status
func (h *GroupHandler) UpdateGroupMemberStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGroupMemberStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	gm, err := h.groupSvc.UpdateMemberStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}
	response.OK(c, gm)
}

func (h *GroupHandler) handleGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 15001, err.Error())
	case errors.Is(err, service.ErrGroupMemberNotFound):
		response.NotFound(c, 15002, err.Error())
	case errors.Is(err, service.ErrGroupLeaderNotFound):
		response.ValidationError(c, 15003, "leaderId", err.Error())
	case errors.Is(err, service.ErrMemberProfileRequired):
		response.ValidationError(c, 15004, "memberId", err.Error())
	case errors.Is(err, service.ErrJoinMemberNotFound):
		response.ValidationError(c, 15005, "memberId", err.Error())
	case errors.Is(err, service.ErrAlreadyInGroup):
		response.ValidationError(c, 15006, "memberId", err.Error())
	case errors.Is(err, service.ErrInvalidGroupMemberStat):
		response.ValidationError(c, 15007, "status", err.Error())
	case errors.Is(err, service.ErrJoinForbidden):
		response.Forbidden(c, 15008, err.Error())
	default:
		response.InternalError(c)
	}
}
