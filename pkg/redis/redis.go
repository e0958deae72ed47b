package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"youth-connect/backend/config"
)

// ErrNil 键不存在
var ErrNil = errors.New("redis: key not found")

// Client Redis 客户端封装
// 用于会话存储与登录限流
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 会话存储 ──

const sessionPrefix = "session:"

// SetSession 写入会话数据，TTL 到期自动失效
func (c *Client) SetSession(ctx context.Context, id string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, sessionPrefix+id, payload, ttl).Err()
}

// GetSession 读取会话数据，不存在时返回 ErrNil
func (c *Client) GetSession(ctx context.Context, id string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, sessionPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNil
	}
	return b, err
}

// DeleteSession 删除会话
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, sessionPrefix+id).Err()
}

// ── 速率限制 ──

// CheckRateLimit 滑动窗口限流：window 内最多 limit 次
// 返回 true 表示放行
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now.Add(-window).UnixNano(), 10))
	pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now.UnixNano()), Member: member})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return count.Val() <= int64(limit), nil
}

// Ping 健康检查
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
