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

// ── 小组模块业务错误 ──

var (
	ErrGroupNotFound          = errors.New("Group not found")
	ErrGroupLeaderNotFound    = errors.New("Leader does not exist")
	ErrMemberProfileRequired  = errors.New("Member profile required")
	ErrJoinForbidden          = errors.New("Members can only join groups for themselves")
	ErrJoinMemberNotFound     = errors.New("Member does not exist")
	ErrAlreadyInGroup         = errors.New("Member has already requested to join this group")
	ErrGroupMemberNotFound    = errors.New("Group membership not found")
	ErrInvalidGroupMemberStat = errors.New("Invalid status")
)

// GroupService 小组业务接口
type GroupService interface {
	List(ctx context.Context) ([]model.Group, error)
	Create(ctx context.Context, req *dto.CreateGroupRequest) (*model.Group, error)
	// Join 提交入组申请，状态为 pending，小组成员数加一
	Join(ctx context.Context, actor Actor, groupID uint, req *dto.JoinGroupRequest) (*model.GroupMember, error)
	ListMembers(ctx context.Context, groupID uint) ([]model.GroupMember, error)
	UpdateMemberStatus(ctx context.Context, id uint, status model.GroupMemberStatus) (*model.GroupMember, error)
}

type groupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGroupService 创建 GroupService 实例
func NewGroupService(repo *repository.Repository, logger *zap.Logger) GroupService {
	return &groupService{repo: repo, logger: logger}
}

func (s *groupService) List(ctx context.Context) ([]model.Group, error) {
	list, err := s.repo.Group.List(ctx)
	if err != nil {
		s.logger.Error("查询小组列表失败", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *groupService) Create(ctx context.Context, req *dto.CreateGroupRequest) (*model.Group, error) {
	g := &model.Group{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    req.LeaderID,
	}
	if err := s.repo.Group.Create(ctx, g); err != nil {
		if errors.Is(err, pkgerrors.ErrIntegrity) {
			return nil, ErrGroupLeaderNotFound
		}
		s.logger.Error("创建小组失败", zap.Error(err))
		return nil, err
	}
	return g, nil
}

// ═══════════════════════════════════════════════════════════
// Join 申请加入小组
// ═══════════════════════════════════════════════════════════
//
//   - 调用者必须已有成员档案
//   - memberId 缺省为本人档案；普通成员只能为自己申请
//   - 同一成员在同一小组只能有一条记录

func (s *groupService) Join(ctx context.Context, actor Actor, groupID uint, req *dto.JoinGroupRequest) (*model.GroupMember, error) {
	// 1. 小组存在
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, err
	}

	// 2. 调用者的成员档案
	own, err := s.repo.Member.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberProfileRequired
		}
		s.logger.Error("查询成员档案失败", zap.Error(err))
		return nil, err
	}

	// 3. 确定申请对象
	memberID := own.ID
	if req != nil && req.MemberID != nil && *req.MemberID != own.ID {
		if !actor.Role.IsPrivileged() {
			return nil, ErrJoinForbidden
		}
		memberID = *req.MemberID
	}

	// 4. 重复申请检查
	exists, err := s.repo.GroupMember.Exists(ctx, groupID, memberID)
	if err != nil {
		s.logger.Error("查询入组记录失败", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInGroup
	}

	// 5. 插入并递增成员数（同一事务）
	gm := &model.GroupMember{
		GroupID:  groupID,
		MemberID: memberID,
		Status:   model.GroupMemberPending,
	}
	if err := s.repo.GroupMember.Add(ctx, gm); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrGroupNotFound
		case errors.Is(err, pkgerrors.ErrIntegrity):
			return nil, ErrJoinMemberNotFound
		case pkgerrors.IsUniqueViolation(err):
			return nil, ErrAlreadyInGroup
		}
		s.logger.Error("提交入组申请失败", zap.Uint("group_id", groupID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("入组申请",
		zap.Uint("group_id", groupID),
		zap.Uint("member_id", memberID),
		zap.Uint("requested_by", actor.UserID),
	)
	return gm, nil
}

func (s *groupService) ListMembers(ctx context.Context, groupID uint) ([]model.GroupMember, error) {
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.Error(err))
		return nil, err
	}

	list, err := s.repo.GroupMember.ListByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("查询小组成员失败", zap.Uint("group_id", groupID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *groupService) UpdateMemberStatus(ctx context.Context, id uint, status model.GroupMemberStatus) (*model.GroupMember, error) {
	if !status.Valid() {
		return nil, ErrInvalidGroupMemberStat
	}

	gm, err := s.repo.GroupMember.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupMemberNotFound
		}
		s.logger.Error("更新入组状态失败", zap.Uint("group_member_id", id), zap.Error(err))
		return nil, err
	}
	return gm, nil
}
