package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

// gin.Context 中的会话键
const (
	CtxUserID       = "user_id"
	CtxRole         = "role"
	CtxPermissions  = "permissions"
	CtxSessionToken = "session_token"
)

// SessionResolver 由会话令牌解析当前用户
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*model.User, error)
}

// SessionToken 读取会话令牌：优先 Cookie，其次 Authorization: Bearer
func SessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// LoadSession 全局会话加载中间件
// 令牌有效时把用户 ID、角色、权限注入上下文；无令牌或令牌无效时按匿名继续
func LoadSession(resolver SessionResolver, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		user, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrSessionInvalid) {
				logger.Warn("会话解析失败，按匿名处理",
					zap.String("request_id", GetRequestID(c)),
					zap.Error(err),
				)
			}
			c.Next()
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxRole, user.Role)
		c.Set(CtxPermissions, user.Permissions)
		c.Set(CtxSessionToken, token)

		c.Next()
	}
}

// RequireSession 要求已登录
// status 为未登录时的响应码：多数路由为 401，部分写接口沿用 403
func RequireSession(status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CtxUserID); ok {
			c.Next()
			return
		}

		if status == http.StatusForbidden {
			response.Forbidden(c, 10003, "Not authorized")
		} else {
			response.Unauthorized(c, 10002, "Not authenticated")
		}
		c.Abort()
	}
}

// RequireRole 角色权限中间件
// 检查当前用户是否具有指定角色之一
func RequireRole(allowedRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := currentRole(c)
		if !ok {
			response.Unauthorized(c, 10002, "Not authenticated")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "Insufficient role")
		c.Abort()
	}
}

// RequireNotMember 要求角色不是 member
// grants 非空时，持有其中任一权限的 member 也可通过
func RequireNotMember(grants ...model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := currentRole(c)
		if !ok {
			response.Unauthorized(c, 10002, "Not authenticated")
			c.Abort()
			return
		}

		if role.IsPrivileged() {
			c.Next()
			return
		}

		perms, _ := c.Get(CtxPermissions)
		if set, ok := perms.(model.PermissionSet); ok {
			for _, p := range grants {
				if set.Has(p) {
					c.Next()
					return
				}
			}
		}

		response.Forbidden(c, 10003, "Insufficient role")
		c.Abort()
	}
}

func currentRole(c *gin.Context) (model.Role, bool) {
	v, ok := c.Get(CtxRole)
	if !ok {
		return "", false
	}
	role, ok := v.(model.Role)
	return role, ok
}
