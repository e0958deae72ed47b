package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

// AnnouncementHandler 公告与评论 HTTP 处理器
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
	commentSvc      service.CommentService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announcementSvc service.AnnouncementService, commentSvc service.CommentService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc, commentSvc: commentSvc}
}

// ListAnnouncements 公告列表（附带作者）
// GET /api/announcements
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	list, err := h.announcementSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// CreateAnnouncement 发布公告，作者取自会话
// POST /api/announcements
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.announcementSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleContentError(c, err)
		return
	}
	response.Created(c, a)
}

// ListComments 公告下的评论（附带作者）
// GET /api/announcements/:id/comments
func (h *AnnouncementHandler) ListComments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.commentSvc.ListByAnnouncement(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// CreateComment 发表评论，作者取自会话
// POST /api/comments
func (h *AnnouncementHandler) CreateComment(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleContentError(c, err)
		return
	}
	response.Created(c, comment)
}

func (h *AnnouncementHandler) handleContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthorNotFound):
		response.ValidationError(c, 14001, "authorId", err.Error())
	case errors.Is(err, service.ErrCommentAnnouncementMissing):
		response.ValidationError(c, 14002, "announcementId", err.Error())
	case errors.Is(err, service.ErrInvalidParentComment):
		response.ValidationError(c, 14003, "parentId", err.Error())
	default:
		response.InternalError(c)
	}
}
