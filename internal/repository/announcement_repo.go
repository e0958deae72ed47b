package repository

import (
	"context"

	"gorm.io/gorm"

	"youth-connect/backend/internal/model"
)

// AnnouncementRepository 公告数据访问接口
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id uint) (*model.Announcement, error)
	// List 附带作者信息，按创建时间倒序
	List(ctx context.Context) ([]model.Announcement, error)
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return translateWriteErr(r.db.WithContext(ctx).Create(a).Error)
}

func (r *announcementRepo) GetByID(ctx context.Context, id uint) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) List(ctx context.Context) ([]model.Announcement, error) {
	list := make([]model.Announcement, 0)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Order("id ASC").
		Find(&list).Error
	return list, err
}
