package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/leon37/RoastMaster/internal/api"
	"github.com/leon37/RoastMaster/internal/api/controller"
	"github.com/leon37/RoastMaster/internal/app"
	"github.com/leon37/RoastMaster/internal/config"
	"github.com/leon37/RoastMaster/internal/metrics"
	"github.com/leon37/RoastMaster/internal/service"
)

// @title           AI Roast Master API
// @version         1.0
// @description     上传照片，让 AI 用段子回敬你

// @host            localhost:8001
// @BasePath        /api/v1

func main() {
	// 1. 初始化 Logger
	// JSON 格式方便日志系统解析，AddSource 带上文件名和行号
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	slog.Info("AI Roast Master 启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 2. Infra Initialization
	analyzer, err := app.NewAnalyzer(conf.Vision)
	if err != nil {
		// 没有人脸模型就没法吐槽照片，直接退出
		log.Fatalf("Failed to init face detector: %v", err)
	}

	m := metrics.NewMetrics()
	roaster, err := app.NewRoastService(context.Background(), conf.LLM, m)
	if err != nil {
		log.Fatalf("Failed to init LLM: %v", err)
	}

	if conf.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer Wiring (依赖注入)
	photos := service.NewPhotoService(analyzer, roaster, conf.Server.UploadDir)
	roastController := controller.NewRoastController(photos, roaster, conf.Server.MaxUploadBytes())
	chatController := controller.NewChatController(roaster)

	// 4. Server Start
	r := gin.Default()
	api.RegisterRoutes(r, m, roastController, chatController)

	slog.Info("Roast Master Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
