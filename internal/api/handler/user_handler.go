package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

// UserHandler 账号管理 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 账号列表
// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, users)
}

// CreateUser 创建账号
// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.Created(c, user)
}

// UpdatePermissions 整体替换账号权限
// PATCH /api/users/:id/permissions
func (h *UserHandler) UpdatePermissions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePermissionsRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userSvc.UpdatePermissions(c.Request.Context(), id, *req.Permissions)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, user)
}

// ListPermissions 可分配的权限清单
// GET /api/permissions
func (h *UserHandler) ListPermissions(c *gin.Context) {
	names := make([]string, 0)
	for _, p := range model.AllPermissions() {
		names = append(names, p.String())
	}
	response.OK(c, names)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.ValidationError(c, 12002, "username", err.Error())
	case errors.Is(err, service.ErrPasswordTooLong):
		response.ValidationError(c, 12003, "password", err.Error())
	case errors.Is(err, service.ErrInvalidRoleValue):
		response.ValidationError(c, 12004, "role", err.Error())
	case errors.Is(err, service.ErrRoleEscalation):
		response.Forbidden(c, 12005, err.Error())
	default:
		response.InternalError(c)
	}
}
