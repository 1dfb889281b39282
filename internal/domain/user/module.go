package user

import (
	followRepository "social_backend/internal/domain/follow/repository"
	followService "social_backend/internal/domain/follow/service"
	"social_backend/internal/domain/user/handler"
	"social_backend/internal/domain/user/repository"
	"social_backend/internal/domain/user/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	// 用户模块优先级最高，因为其他模块可能依赖它
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	userRepo := repository.NewUserRepository(ctx.DB)
	follows := followService.NewFollowService(followRepository.NewFollowRepository(ctx.DB))
	userService := service.NewUserService(userRepo, follows)
	userHandler := handler.NewUserHandler(userService)

	// 2. 路由注册
	setupRoutes(ctx.Router, userHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	// 公开路由
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	userGroup := r.Group("/api/users")
	userGroup.GET("/:user_id", middleware.OptionalAuthMiddleware(), h.GetProfile)

	// 受保护的路由
	auth := userGroup.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/search", h.SearchUsers)
		auth.DELETE("/me", h.DeleteAccount)
	}
}
