package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "social_backend/internal/domain/comment"
	_ "social_backend/internal/domain/follow"
	_ "social_backend/internal/domain/like"
	_ "social_backend/internal/domain/post"
	_ "social_backend/internal/domain/user"
	"social_backend/internal/pkg/config"
	"social_backend/internal/pkg/middleware"
	"social_backend/internal/pkg/registry"
	"social_backend/pkg/database"
	"social_backend/pkg/logger"
	"social_backend/pkg/metrics"
	"social_backend/pkg/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// 1. 配置与日志
	config.LoadConfig()
	cfg := config.GlobalConfig

	if err := logger.Init(cfg.App.Env, cfg.App.Debug); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)

	// 2. 基础设施
	db := database.InitDatabase()
	defer database.Close(db)
	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatal("Failed to get underlying sql.DB", zap.Error(err))
	}

	rdb := database.InitRedis()
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, cfg.Database.DBName),
	)
	collector := metrics.NewMetricsCollector(reg)

	// 3. 路由与全局中间件
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(collector))
	r.Use(middleware.RateLimitMiddleware(
		middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.IPRate), cfg.RateLimit.IPBurst),
		collector,
	))
	r.Use(middleware.TimeoutMiddleware(cfg.Server.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	// 4. 业务模块
	if err := registry.InitModules(&registry.ModuleContext{
		DB:      db,
		Redis:   rdb,
		Router:  r,
		Metrics: collector,
		Config:  &cfg,
	}); err != nil {
		logger.L().Fatal("Failed to init modules", zap.Error(err))
	}

	// 5. 启动与优雅退出
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.L().Info("Server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("Server start error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("Server forced to shutdown", zap.Error(err))
	}
}
