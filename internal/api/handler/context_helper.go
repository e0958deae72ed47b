package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/internal/api/middleware"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 会话中间件未注入时写入 401 响应并返回 false，调用方应直接 return。
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, 10002, "Not authenticated")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "Not authenticated")
		return 0, false
	}
	return id, true
}

// MustGetActor 提取当前登录身份（用户 ID + 角色）
func MustGetActor(c *gin.Context) (service.Actor, bool) {
	id, ok := MustGetUserID(c)
	if !ok {
		return service.Actor{}, false
	}
	v, _ := c.Get(middleware.CtxRole)
	role, ok := v.(model.Role)
	if !ok || !role.Valid() {
		response.Unauthorized(c, 10002, "Not authenticated")
		return service.Actor{}, false
	}
	return service.Actor{UserID: id, Role: role}, true
}

// parseIDParam 解析路径中的自增 ID，非法时写入 400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.ValidationError(c, 10001, name, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
