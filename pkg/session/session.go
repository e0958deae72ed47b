// Package session 管理服务端会话：会话数据保存在 Store 中，
// 客户端只持有签名令牌，令牌的 jti 即会话 ID。
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"youth-connect/backend/config"
)

// ErrSessionNotFound 会话不存在、已过期或已注销
var ErrSessionNotFound = errors.New("会话不存在或已失效")

// Session 服务端会话记录
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store 会话存储接口
type Store interface {
	Save(ctx context.Context, s *Session) error
	// Get 会话不存在或过期时返回 ErrSessionNotFound
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Manager 会话生命周期管理：签发、解析、注销
type Manager struct {
	store Store
	codec *TokenCodec
	ttl   time.Duration
}

// NewManager 创建会话管理器
func NewManager(store Store, cfg *config.AuthConfig) *Manager {
	return &Manager{
		store: store,
		codec: NewTokenCodec(cfg.SessionSecret),
		ttl:   cfg.SessionTTL,
	}
}

// TTL 会话有效期
func (m *Manager) TTL() time.Duration { return m.ttl }

// Create 为用户创建新会话，返回签名令牌
func (m *Manager) Create(ctx context.Context, userID uint) (string, *Session, error) {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, s); err != nil {
		return "", nil, err
	}

	token, err := m.codec.Sign(s)
	if err != nil {
		_ = m.store.Delete(ctx, s.ID)
		return "", nil, err
	}

	return token, s, nil
}

// Resolve 校验令牌并加载对应会话
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := m.codec.Parse(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	s, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	// 令牌与会话必须指向同一用户
	if s.UserID != claims.UserID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Destroy 注销会话；令牌无效时视为已注销
func (m *Manager) Destroy(ctx context.Context, token string) error {
	claims, err := m.codec.Parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}

// Close 关闭底层存储
func (m *Manager) Close() error {
	return m.store.Close()
}
