package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
	pkgerrors "youth-connect/backend/pkg/errors"
)

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrUsernameTaken    = errors.New("Username already exists")
	ErrPasswordTooLong  = errors.New("Password must be at most 72 bytes")
	ErrRoleEscalation   = errors.New("Only a system admin can create system admins")
	ErrInvalidRoleValue = errors.New("Invalid role")
)

// UserService 账号管理业务接口
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateUserRequest) (*model.User, error)
	// UpdatePermissions 整体替换目标账号的权限集合
	UpdatePermissions(ctx context.Context, id uint, perms model.PermissionSet) (*model.User, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, actor Actor, req *dto.CreateUserRequest) (*model.User, error) {
	role := req.Role
	if role == "" {
		role = model.RoleMember
	}
	if !role.Valid() {
		return nil, ErrInvalidRoleValue
	}
	// 只有 system_admin 可以创建 system_admin
	if role == model.RoleSystemAdmin && actor.Role != model.RoleSystemAdmin {
		return nil, ErrRoleEscalation
	}

	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户名失败", zap.Error(err))
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:    req.Username,
		Password:    hash,
		Role:        role,
		Permissions: req.Permissions,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("创建用户",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.Uint("created_by", actor.UserID),
	)
	return user, nil
}

func (s *userService) UpdatePermissions(ctx context.Context, id uint, perms model.PermissionSet) (*model.User, error) {
	user, err := s.repo.User.UpdatePermissions(ctx, id, perms)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("更新用户权限失败", zap.Uint("user_id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// HashPassword bcrypt 哈希
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hash), nil
}
