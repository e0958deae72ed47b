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

// ── 成员模块业务错误 ──

var (
	ErrMemberNotFound      = errors.New("Member not found")
	ErrMemberProfileExists = errors.New("This account already has a member profile")
	ErrMemberUserNotFound  = errors.New("Linked user does not exist")
	ErrMemberForbidden     = errors.New("Members can only create their own profile")
)

// MemberService 成员档案业务接口
type MemberService interface {
	List(ctx context.Context, search string) ([]model.Member, error)
	Get(ctx context.Context, id uint) (*model.Member, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateMemberRequest) (*model.Member, error)
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService 创建 MemberService 实例
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

func (s *memberService) List(ctx context.Context, search string) ([]model.Member, error) {
	members, err := s.repo.Member.List(ctx, search)
	if err != nil {
		s.logger.Error("查询成员列表失败", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (s *memberService) Get(ctx context.Context, id uint) (*model.Member, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("查询成员失败", zap.Uint("member_id", id), zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *memberService) Create(ctx context.Context, actor Actor, req *dto.CreateMemberRequest) (*model.Member, error) {
	// 1. 确定关联账号：缺省为当前账号；替他人建档或建立无账号档案需要管理角色
	var userID *uint
	switch {
	case req.Unlinked:
		if !actor.Role.IsPrivileged() {
			return nil, ErrMemberForbidden
		}
	case req.UserID != nil:
		if *req.UserID != actor.UserID && !actor.Role.IsPrivileged() {
			return nil, ErrMemberForbidden
		}
		id := *req.UserID
		userID = &id
	default:
		id := actor.UserID
		userID = &id
	}

	// 2. 一个账号只能有一份档案
	if userID != nil {
		if _, err := s.repo.Member.GetByUserID(ctx, *userID); err == nil {
			return nil, ErrMemberProfileExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询成员档案失败", zap.Error(err))
			return nil, err
		}
	}

	member := &model.Member{
		UserID:   userID,
		FullName: req.FullName,
		Category: req.Category,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := s.repo.Member.Create(ctx, member); err != nil {
		switch {
		case errors.Is(err, pkgerrors.ErrIntegrity):
			return nil, ErrMemberUserNotFound
		case pkgerrors.IsUniqueViolation(err):
			return nil, ErrMemberProfileExists
		}
		s.logger.Error("创建成员档案失败", zap.Error(err))
		return nil, err
	}
	return member, nil
}
