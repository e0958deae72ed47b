package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/pkg/response"
)

const (
	corsAllowHeaders  = "Content-Type, Authorization, X-Request-ID"
	corsAllowMethods  = "GET, POST, PATCH, OPTIONS"
	corsExposeHeaders = "X-Request-ID, Content-Disposition, Retry-After"
)

// CORS 跨域中间件
// 会话依赖 Cookie，只对白名单内的 Origin 回显并允许携带凭证；
// 白名单外 Origin 的预检请求直接 403，普通请求照常处理但不带 CORS 头
func CORS(allowOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, o := range allowOrigins {
		allowed[strings.TrimRight(strings.TrimSpace(o), "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		c.Writer.Header().Add("Vary", "Origin")

		_, ok := allowed[origin]
		if ok {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Expose-Headers", corsExposeHeaders)
		}

		if c.Request.Method != http.MethodOptions || c.GetHeader("Access-Control-Request-Method") == "" {
			c.Next()
			return
		}

		// ── 预检 ──
		if origin != "" && !ok {
			response.Forbidden(c, 10003, "Origin not allowed")
			c.Abort()
			return
		}
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Max-Age", "86400")
		c.AbortWithStatus(http.StatusNoContent)
	}
}
