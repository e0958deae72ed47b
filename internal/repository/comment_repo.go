package repository

import (
	"context"

	"gorm.io/gorm"

	"youth-connect/backend/internal/model"
)

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id uint) (*model.Comment, error)
	// ListByAnnouncement 附带作者信息，按创建时间倒序，同一时间按 ID 升序
	ListByAnnouncement(ctx context.Context, announcementID uint) ([]model.Comment, error)
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo 创建 CommentRepository 实例
func NewCommentRepo(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) error {
	return translateWriteErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *commentRepo) GetByID(ctx context.Context, id uint) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) ListByAnnouncement(ctx context.Context, announcementID uint) ([]model.Comment, error) {
	list := make([]model.Comment, 0)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("announcement_id = ?", announcementID).
		Order("created_at DESC").
		Order("id ASC").
		Find(&list).Error
	return list, err
}
