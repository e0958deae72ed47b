package repository

import (
	"context"

	"gorm.io/gorm"

	"youth-connect/backend/internal/model"
)

// GroupRepository 小组数据访问接口
type GroupRepository interface {
	Create(ctx context.Context, g *model.Group) error
	GetByID(ctx context.Context, id uint) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
}

type groupRepo struct {
	db *gorm.DB
}

// NewGroupRepo 创建 GroupRepository 实例
func NewGroupRepo(db *gorm.DB) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) Create(ctx context.Context, g *model.Group) error {
	// 成员数只能通过 GroupMemberRepository.Add 递增
	g.MemberCount = 0
	return translateWriteErr(r.db.WithContext(ctx).Create(g).Error)
}

func (r *groupRepo) GetByID(ctx context.Context, id uint) (*model.Group, error) {
	var g model.Group
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepo) List(ctx context.Context) ([]model.Group, error) {
	list := make([]model.Group, 0)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&list).Error
	return list, err
}
