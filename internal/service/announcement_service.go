package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
	pkgerrors "youth-connect/backend/pkg/errors"
)

// ── 公告模块业务错误 ──

var (
	ErrAnnouncementNotFound = errors.New("Announcement not found")
	ErrAuthorNotFound       = errors.New("Author does not exist")
)

// AnnouncementService 公告业务接口
type AnnouncementService interface {
	List(ctx context.Context) ([]model.Announcement, error)
	// Create 作者取自 actor
	Create(ctx context.Context, actor Actor, req *dto.CreateAnnouncementRequest) (*model.Announcement, error)
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) List(ctx context.Context) ([]model.Announcement, error) {
	list, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("查询公告列表失败", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *announcementService) Create(ctx context.Context, actor Actor, req *dto.CreateAnnouncementRequest) (*model.Announcement, error) {
	a := &model.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: actor.UserID,
	}
	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		if errors.Is(err, pkgerrors.ErrIntegrity) {
			return nil, ErrAuthorNotFound
		}
		s.logger.Error("发布公告失败", zap.Error(err))
		return nil, err
	}

	// 回读以附带作者信息
	created, err := s.repo.Announcement.GetByID(ctx, a.ID)
	if err != nil {
		s.logger.Warn("回读公告失败", zap.Uint("announcement_id", a.ID), zap.Error(err))
		return a, nil
	}
	return created, nil
}
