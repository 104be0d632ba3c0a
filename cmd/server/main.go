package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"grade-compass/backend/config"
	"grade-compass/backend/internal/api/handler"
	"grade-compass/backend/internal/api/router"
	"grade-compass/backend/internal/record"
	"grade-compass/backend/internal/repository"
	"grade-compass/backend/internal/service"
	"grade-compass/backend/pkg/database"
	applogger "grade-compass/backend/pkg/logger"
	"grade-compass/backend/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
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

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，GPA 缓存与限速功能将不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 水合内存 Store：数据库快照 → Store
	repo := repository.NewRepository(db)
	store := record.NewStore()

	snap, err := repo.Snapshot.Load(context.Background())
	if err != nil {
		logger.Fatal("加载档案快照失败", zap.Error(err))
	}
	store.Hydrate(snap)
	logger.Info("档案数据已水合", zap.Int("profiles", len(snap.Profiles)))

	// 首次运行没有任何档案时自动创建默认档案
	if len(snap.Profiles) == 0 {
		p := store.CreateProfile(cfg.Planner.DefaultProfileName)
		logger.Info("已创建默认档案", zap.String("id", p.ProfileID), zap.String("name", p.Name))
	}

	// 6. 启动落盘器并挂到 Store 的变更观察者上
	persister := service.NewPersister(repo.Snapshot, logger)
	persister.Start()
	store.OnChange(persister.Enqueue)

	// 7. 依赖注入: Service → Handler → Router
	svc := service.NewService(cfg, store, rdb, logger)
	h := handler.NewHandler(svc)
	engine := router.Setup(cfg, h, store, rdb, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

	// HTTP 已停，不会再有新变更；等最后一次落盘完成
	store.OnChange(nil)
	persister.Stop()

	// 关闭数据库连接
	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
