package follow

import (
	"social_backend/internal/domain/follow/handler"
	"social_backend/internal/domain/follow/repository"
	"social_backend/internal/domain/follow/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// FollowModule 关注关系模块
type FollowModule struct{}

func init() {
	registry.Register(&FollowModule{})
}

func (m *FollowModule) Name() string {
	return "follow"
}

func (m *FollowModule) Priority() int {
	return 10
}

func (m *FollowModule) Init(ctx *registry.ModuleContext) error {
	fRepo := repository.NewFollowRepository(ctx.DB)
	fService := service.NewFollowService(fRepo)
	fHandler := handler.NewFollowHandler(fService, ctx.Metrics)

	setupRoutes(ctx.Router, fHandler, ctx.WriteLimit())
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.FollowHandler, writeLimit gin.HandlerFunc) {
	g := r.Group("/api/users")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/following", h.GetMyFollowing)
		g.GET("/followers", h.GetMyFollowers)
		g.GET("/stats", h.GetFollowStats)

		g.POST("/:user_id/follow", writeLimit, h.Follow)
		g.DELETE("/:user_id/unfollow", writeLimit, h.Unfollow)
	}
}
