package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quietRoutes 探活与指标抓取频繁，成功时只记 Debug
var quietRoutes = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// Logger 请求日志中间件
// 不记录 query：成员搜索词属于个人信息
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if route == "" {
			fields = append(fields, zap.String("path", c.Request.URL.Path))
		}
		if uid, ok := c.Get(CtxUserID); ok {
			fields = append(fields, zap.Any("user_id", uid))
		}
		if role, ok := currentRole(c); ok {
			fields = append(fields, zap.String("role", role.String()))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		switch {
		case status >= 500:
			logger.Error("请求处理失败", fields...)
		case status >= 400:
			logger.Warn("客户端错误", fields...)
		default:
			if _, quiet := quietRoutes[route]; quiet {
				logger.Debug("请求完成", fields...)
				return
			}
			logger.Info("请求完成", fields...)
		}
	}
}
