package repository

import (
	"context"

	"gorm.io/gorm"

	"youth-connect/backend/internal/model"
)

// GroupMemberRepository 小组成员关系数据访问接口
type GroupMemberRepository interface {
	// Add 在同一事务内插入关系并将小组 member_count 加一
	Add(ctx context.Context, gm *model.GroupMember) error
	GetByID(ctx context.Context, id uint) (*model.GroupMember, error)
	Exists(ctx context.Context, groupID, memberID uint) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status model.GroupMemberStatus) (*model.GroupMember, error)
	// ListByGroup 附带成员档案，按加入顺序
	ListByGroup(ctx context.Context, groupID uint) ([]model.GroupMember, error)
}

type groupMemberRepo struct {
	db *gorm.DB
}

// NewGroupMemberRepo 创建 GroupMemberRepository 实例
func NewGroupMemberRepo(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepo{db: db}
}

func (r *groupMemberRepo) Add(ctx context.Context, gm *model.GroupMember) error {
	if gm.Status == "" {
		gm.Status = model.GroupMemberPending
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(gm).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Group{}).
			Where("id = ?", gm.GroupID).
			UpdateColumn("member_count", gorm.Expr("member_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateWriteErr(err)
}

func (r *groupMemberRepo) GetByID(ctx context.Context, id uint) (*model.GroupMember, error) {
	var gm model.GroupMember
	if err := r.db.WithContext(ctx).First(&gm, id).Error; err != nil {
		return nil, err
	}
	return &gm, nil
}

func (r *groupMemberRepo) Exists(ctx context.Context, groupID, memberID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GroupMember{}).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Count(&count).Error
	return count > 0, err
}

func (r *groupMemberRepo) UpdateStatus(ctx context.Context, id uint, status model.GroupMemberStatus) (*model.GroupMember, error) {
	res := r.db.WithContext(ctx).
		Model(&model.GroupMember{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *groupMemberRepo) ListByGroup(ctx context.Context, groupID uint) ([]model.GroupMember, error) {
	list := make([]model.GroupMember, 0)
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Order("id ASC").
		Find(&list).Error
	return list, err
}
