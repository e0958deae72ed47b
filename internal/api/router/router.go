package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"youth-connect/backend/config"
	"youth-connect/backend/internal/api/handler"
	"youth-connect/backend/internal/api/middleware"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/pkg/response"
)

// Deps 路由依赖
type Deps struct {
	Handler  *handler.Handler
	Sessions middleware.SessionResolver
	// Limiter 为 nil 时登录接口不限流
	Limiter  middleware.RateLimiter
	DB       *gorm.DB
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, d Deps) *gin.Engine {
	h := d.Handler
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))
	if d.Registry != nil {
		r.Use(middleware.NewMetrics(d.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}
	r.Use(middleware.LoadSession(d.Sessions, cfg.Auth.Cookie.Name, d.Logger))

	// ── 健康检查 ──
	r.GET("/health", healthCheck(d.DB))

	requireSession := middleware.RequireSession(http.StatusUnauthorized)
	// 以下写接口未登录时返回 403
	requireSession403 := middleware.RequireSession(http.StatusForbidden)
	notMember := middleware.RequireNotMember()
	systemAdmin := middleware.RequireRole(model.RoleSystemAdmin)

	api := r.Group("/api")
	{
		// 认证
		api.POST("/login", middleware.RateLimit(d.Limiter, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow, d.Logger), h.Auth.Login)
		api.POST("/logout", h.Auth.Logout)
		api.GET("/user", requireSession, h.Auth.CurrentUser)

		// 账号管理
		api.GET("/users", requireSession, notMember, h.User.ListUsers)
		api.POST("/users", requireSession, notMember, h.User.CreateUser)
		api.PATCH("/users/:id/permissions", requireSession, systemAdmin, h.User.UpdatePermissions)
		api.GET("/permissions", requireSession, systemAdmin, h.User.ListPermissions)

		// 成员档案
		api.GET("/members", h.Member.ListMembers)
		api.GET("/members/export", requireSession, middleware.RequireNotMember(model.PermManageMembers), h.Export.ExportMembers)
		api.GET("/members/:id", h.Member.GetMember)
		api.POST("/members", requireSession, h.Member.CreateMember)

		// 公告与评论
		api.GET("/announcements", h.Announcement.ListAnnouncements)
		api.POST("/announcements", requireSession, h.Announcement.CreateAnnouncement)
		api.GET("/announcements/:id/comments", h.Announcement.ListComments)
		api.POST("/comments", requireSession, h.Announcement.CreateComment)

		// 小组
		api.GET("/groups", h.Group.ListGroups)
		api.POST("/groups", requireSession403, h.Group.CreateGroup)
		api.GET("/groups/:id/members", requireSession, h.Group.ListGroupMembers)
		api.POST("/groups/:id/members", requireSession403, h.Group.JoinGroup)
		api.GET("/groups/:id/members/export", requireSession, middleware.RequireNotMember(model.PermManageMembers), h.Export.ExportGroupRoster)
		api.PATCH("/group-members/:id/status", requireSession, notMember, h.Group.UpdateGroupMemberStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, 10006, "Not found")
	})

	return r
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
				defer cancel()
				err = sqlDB.PingContext(ctx)
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
