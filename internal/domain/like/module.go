package like

import (
	"social_backend/internal/domain/like/handler"
	"social_backend/internal/domain/like/repository"
	"social_backend/internal/domain/like/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// LikeModule 点赞模块
type LikeModule struct{}

func init() {
	registry.Register(&LikeModule{})
}

func (m *LikeModule) Name() string {
	return "like"
}

func (m *LikeModule) Priority() int {
	return 30
}

func (m *LikeModule) Init(ctx *registry.ModuleContext) error {
	lRepo := repository.NewLikeRepository(ctx.DB)
	lService := service.NewLikeService(lRepo)
	lHandler := handler.NewLikeHandler(lService, ctx.Metrics)

	setupRoutes(ctx.Router, lHandler, ctx.WriteLimit())
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.LikeHandler, writeLimit gin.HandlerFunc) {
	posts := r.Group("/api/posts")
	{
		posts.GET("/:post_id/likes", h.GetPostLikers)
		posts.GET("/:post_id/likes/count", h.GetLikeCount)
	}

	auth := posts.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/:post_id/like", writeLimit, h.LikePost)
		auth.DELETE("/:post_id/like", writeLimit, h.UnlikePost)
		auth.GET("/:post_id/likes/status", h.GetLikeStatus)
	}

	r.GET("/api/users/me/likes", middleware.AuthMiddleware(), h.GetMyLikedPosts)
}
