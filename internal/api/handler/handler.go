package handler

import (
	"youth-connect/backend/config"
	"youth-connect/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Member       *MemberHandler
	Announcement *AnnouncementHandler
	Group        *GroupHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, authCfg *config.AuthConfig) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, authCfg),
		User:         NewUserHandler(svc.User),
		Member:       NewMemberHandler(svc.Member),
		Announcement: NewAnnouncementHandler(svc.Announcement, svc.Comment),
		Group:        NewGroupHandler(svc.Group),
		Export:       NewExportHandler(svc.Export),
	}
}
