package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Taher-PIO/contoso-migrate-sub001/config"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/api/handler"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/api/router"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/repository"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/seed"
	"github.com/Taher-PIO/contoso-migrate-sub001/internal/service"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/database"
	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// ── 加载配置 ──
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// ── 初始化日志 ──
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	// ── 连接数据库 ──
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, log)
	if err != nil {
		log.Fatal("连接数据库失败", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("获取数据库连接失败", zap.Error(err))
	}
	defer sqlDB.Close()

	// ── 执行数据库迁移 ──
	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("数据库迁移失败", zap.Error(err))
	}

	// ── 初始化示例数据 ──
	if cfg.Seed.Enabled {
		if err := seed.Run(db, log); err != nil {
			log.Fatal("初始化示例数据失败", zap.Error(err))
		}
	}

	// ── 组装依赖 ──
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, log)
	h := handler.NewHandler(svc, db)
	engine := router.Setup(cfg, h, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 启动服务 ──
	go func() {
		log.Info("服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// ── 优雅关闭 ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("收到关闭信号，开始优雅关闭")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务关闭异常", zap.Error(err))
	}

	log.Info("服务已退出")
}
