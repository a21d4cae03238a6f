package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-odds/config"
	"go-odds/controller"
	"go-odds/logger"
	"go-odds/middleware"
	"go-odds/repository"
	"go-odds/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.Mode)
	defer logger.L.Sync()

	// 缓存和历史都是可选依赖，连不上只降级不拦启动
	repository.InitRedis(cfg)
	repository.InitMySQL(cfg)
	controller.HistoryLimit = cfg.HistoryLimit

	switch cfg.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.Default()

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true, // 允许所有来源
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	router.InitRouter(r)

	logger.L.Info("✅ 服务启动", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.L.Fatal("服务退出", zap.Error(err))
	}
}
