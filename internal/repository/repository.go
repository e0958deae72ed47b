package repository

import (
	"gorm.io/gorm"

	pkgerrors "youth-connect/backend/pkg/errors"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Member       MemberRepository
	Announcement AnnouncementRepository
	Comment      CommentRepository
	Group        GroupRepository
	GroupMember  GroupMemberRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Member:       NewMemberRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Comment:      NewCommentRepo(db),
		Group:        NewGroupRepo(db),
		GroupMember:  NewGroupMemberRepo(db),
	}
}

// translateWriteErr 外键冲突统一转换为 ErrIntegrity
func translateWriteErr(err error) error {
	if pkgerrors.IsForeignKeyViolation(err) {
		return pkgerrors.ErrIntegrity
	}
	return err
}
