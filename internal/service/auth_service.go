package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"youth-connect/backend/internal/dto"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
	"youth-connect/backend/pkg/session"
)

var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrSessionInvalid     = errors.New("Session expired or invalid")
)

// LoginResult 登录结果：会话令牌与当前用户
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	// ResolveSession 由令牌加载会话用户，每次请求重新读取角色与权限
	ResolveSession(ctx context.Context, token string) (*model.User, error)
	GetCurrentUser(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	repo     *repository.Repository
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	sessions *session.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 建立会话
	token, sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("创建会话失败", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户登录", zap.Uint("user_id", user.ID), zap.String("session_id", sess.ID))

	return &LoginResult{
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		User:      user,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		s.logger.Error("注销会话失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	sess, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}

	user, err := s.repo.User.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 账号已不存在，会话一并作废
			_ = s.sessions.Destroy(ctx, token)
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	return user, nil
}
