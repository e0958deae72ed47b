package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
	pkgerrors "youth-connect/backend/pkg/errors"
)

// ── 评论模块业务错误 ──

var (
	ErrCommentAnnouncementMissing = errors.New("Announcement does not exist")
	ErrInvalidParentComment       = errors.New("Parent comment must belong to the same announcement")
)

// CommentService 评论业务接口
type CommentService interface {
	// ListByAnnouncement 公告不存在时返回空列表
	ListByAnnouncement(ctx context.Context, announcementID uint) ([]model.Comment, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateCommentRequest) (*model.Comment, error)
}

type commentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCommentService 创建 CommentService 实例
func NewCommentService(repo *repository.Repository, logger *zap.Logger) CommentService {
	return &commentService{repo: repo, logger: logger}
}

func (s *commentService) ListByAnnouncement(ctx context.Context, announcementID uint) ([]model.Comment, error) {
	list, err := s.repo.Comment.ListByAnnouncement(ctx, announcementID)
	if err != nil {
		s.logger.Error("查询评论失败", zap.Uint("announcement_id", announcementID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *commentService) Create(ctx context.Context, actor Actor, req *dto.CreateCommentRequest) (*model.Comment, error) {
	// 1. 公告必须存在
	if _, err := s.repo.Announcement.GetByID(ctx, req.AnnouncementID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentAnnouncementMissing
		}
		s.logger.Error("查询公告失败", zap.Error(err))
		return nil, err
	}

	// 2. 回复只能挂在同一公告的评论下
	if req.ParentID != nil {
		parent, err := s.repo.Comment.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidParentComment
			}
			s.logger.Error("查询父评论失败", zap.Error(err))
			return nil, err
		}
		if parent.AnnouncementID != req.AnnouncementID {
			return nil, ErrInvalidParentComment
		}
	}

	c := &model.Comment{
		AnnouncementID: req.AnnouncementID,
		ParentID:       req.ParentID,
		AuthorID:       actor.UserID,
		Content:        req.Content,
	}
	if err := s.repo.Comment.Create(ctx, c); err != nil {
		if errors.Is(err, pkgerrors.ErrIntegrity) {
			return nil, ErrCommentAnnouncementMissing
		}
		s.logger.Error("发表评论失败", zap.Error(err))
		return nil, err
	}
	return c, nil
}
