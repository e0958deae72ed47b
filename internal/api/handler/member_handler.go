package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

// MemberHandler 成员档案 HTTP 处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建 MemberHandler
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// ListMembers 成员列表
// GET /api/members?search=
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var q dto.MemberListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	members, err := h.memberSvc.List(c.Request.Context(), q.Search)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, members)
}

// GetMember 成员详情
// GET /api/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	member, err := h.memberSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.OK(c, member)
}

// CreateMember 创建成员档案
// POST /api/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}
	response.Created(c, member)
}

func (h *MemberHandler) handleMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrMemberProfileExists):
		response.ValidationError(c, 13002, "userId", err.Error())
	case errors.Is(err, service.ErrMemberUserNotFound):
		response.ValidationError(c, 13003, "userId", err.Error())
	case errors.Is(err, service.ErrMemberForbidden):
		response.Forbidden(c, 13004, err.Error())
	default:
		response.InternalError(c)
	}
}
