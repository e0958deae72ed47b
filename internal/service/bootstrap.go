package service

import (
	"context"

	"go.uber.org/zap"

	"youth-connect/backend/config"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
)

// bootstrapPermissions 种子系统管理员的初始权限
var bootstrapPermissions = model.NewPermissionSet(
	model.PermCreateUser,
	model.PermDeleteUser,
	model.PermManageContent,
)

// SeedAdmin 用户表为空时创建系统管理员，返回是否创建
func SeedAdmin(ctx context.Context, repo *repository.Repository, cfg *config.BootstrapConfig, logger *zap.Logger) (bool, error) {
	total, err := repo.User.Count(ctx)
	if err != nil {
		return false, err
	}
	if total > 0 {
		return false, nil
	}

	password := cfg.AdminPassword
	if password == "" {
		password = config.DefaultAdminPassword
	}
	if password == config.DefaultAdminPassword {
		logger.Warn("种子管理员使用默认密码，请尽快修改", zap.String("username", cfg.AdminUsername))
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := &model.User{
		Username:    cfg.AdminUsername,
		Password:    hash,
		Role:        model.RoleSystemAdmin,
		Permissions: bootstrapPermissions,
	}
	if err := repo.User.Create(ctx, admin); err != nil {
		return false, err
	}

	logger.Info("已创建种子系统管理员", zap.Uint("user_id", admin.ID), zap.String("username", admin.Username))
	return true, nil
}
