package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// Content-Length 已超限时直接返回 413；其余情况由 MaxBytesReader 在读取时截断，
// 绑定层识别 *http.MaxBytesError 并返回 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Request body too large")
			c.Abort()
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
