package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"youth-connect/backend/config"
	"youth-connect/backend/internal/api/handler"
	"youth-connect/backend/internal/api/middleware"
	"youth-connect/backend/internal/api/router"
	"youth-connect/backend/internal/model"
	"youth-connect/backend/internal/repository"
	"youth-connect/backend/internal/service"
	"youth-connect/backend/pkg/database"
	applogger "youth-connect/backend/pkg/logger"
	"youth-connect/backend/pkg/redis"
	"youth-connect/backend/pkg/session"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("YC_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库并迁移
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	logger.Info("数据库连接成功")

	if err := database.Migrate(db, cfg.Database.Driver, logger, model.AllModels()...); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 会话存储：优先 Redis，不可用时降级为进程内存储
	var (
		rdb   *redis.Client
		store session.Store
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，会话改用内存存储，登录限流关闭", zap.Error(err))
			rdb = nil
		}
	}
	if rdb != nil {
		store = session.NewRedisStore(rdb)
	} else {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, &cfg.Auth)

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, sessions, logger)
	h := handler.NewHandler(svc, &cfg.Auth)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := service.SeedAdmin(seedCtx, repo, &cfg.Bootstrap, logger); err != nil {
		seedCancel()
		logger.Fatal("初始化系统管理员失败", zap.Error(err))
	}
	seedCancel()

	// 6. 指标
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 7. 初始化路由
	deps := router.Deps{
		Handler:  h,
		Sessions: svc.Auth,
		DB:       db,
		Registry: registry,
		Logger:   logger,
	}
	// 接口值必须保持 nil，不能装入 nil 指针
	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}
	deps.Limiter = limiter
	engine := router.Setup(cfg, deps)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	if sqlDB, _ := db.DB(); sqlDB != nil {
		sqlDB.Close()
	}

	// 关闭会话存储（Redis 连接随之关闭）
	if err := sessions.Close(); err != nil {
		logger.Warn("关闭会话存储失败", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
