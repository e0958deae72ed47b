package repository

import (
	"context"

	"gorm.io/gorm"

	"youth-connect/backend/internal/model"
)

// MemberRepository 成员档案数据访问接口
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id uint) (*model.Member, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Member, error)
	// List search 仅被接受，当前返回全部成员
	List(ctx context.Context, search string) ([]model.Member, error)
}

type memberRepo struct {
	db *gorm.DB
}

// NewMemberRepo 创建 MemberRepository 实例
func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *model.Member) error {
	return translateWriteErr(r.db.WithContext(ctx).Create(member).Error)
}

func (r *memberRepo) GetByID(ctx context.Context, id uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) GetByUserID(ctx context.Context, userID uint) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) List(ctx context.Context, _ string) ([]model.Member, error) {
	members := make([]model.Member, 0)
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&members).Error
	return members, err
}
