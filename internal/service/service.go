package service

import (
	"go.uber.org/zap"

	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
	"youth-connect/backend/pkg/session"
)

// Actor 当前请求的登录身份，由中间件从会话解析
type Actor struct {
	UserID uint
	Role   model.Role
}

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	User         UserService
	Member       MemberService
	Announcement AnnouncementService
	Comment      CommentService
	Group        GroupService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	sessions *session.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, sessions, logger),
		User:         NewUserService(repo, logger),
		Member:       NewMemberService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Comment:      NewCommentService(repo, logger),
		Group:        NewGroupService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
