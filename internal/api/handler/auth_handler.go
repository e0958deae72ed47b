package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"youth-connect/backend/config"
	"youth-connect/backend/internal/api/middleware"
	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	cfg     *config.AuthConfig
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, cfg *config.AuthConfig) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, cfg: cfg}
}

// Login 用户登录，成功后写入会话 Cookie 并返回用户
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(h.cfg.SessionTTL.Seconds()))
	response.OK(c, result.User)
}

// Logout 注销会话，未登录时同样返回 200
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxSessionToken)
	if token == "" {
		token = middleware.SessionToken(c, h.cfg.Cookie.Name)
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.OK(c, gin.H{"message": "Logged out"})
}

// CurrentUser 获取当前登录用户
// GET /api/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(parseSameSite(h.cfg.Cookie.SameSite))
	c.SetCookie(h.cfg.Cookie.Name, value, maxAge, "/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
}

func parseSameSite(v string) http.SameSite {
	switch v {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, err.Error())
	case errors.Is(err, service.ErrSessionInvalid), errors.Is(err, service.ErrUserNotFound):
		response.Unauthorized(c, 11002, "Not authenticated")
	default:
		response.InternalError(c)
	}
}
