package post

import (
	commentRepository "social_backend/internal/domain/comment/repository"
	commentService "social_backend/internal/domain/comment/service"
	likeRepository "social_backend/internal/domain/like/repository"
	likeService "social_backend/internal/domain/like/service"
	"social_backend/internal/domain/post/handler"
	"social_backend/internal/domain/post/repository"
	"social_backend/internal/domain/post/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// PostModule 帖子与动态流模块
type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 20
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	likes := likeService.NewLikeService(likeRepository.NewLikeRepository(ctx.DB))
	comments := commentService.NewCommentService(commentRepository.NewCommentRepository(ctx.DB))

	pRepo := repository.NewPostRepository(ctx.DB)
	pService := service.NewPostService(pRepo, likes, comments)
	pHandler := handler.NewPostHandler(pService, ctx.Metrics)

	setupRoutes(ctx.Router, pHandler, ctx.WriteLimit())
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PostHandler, writeLimit gin.HandlerFunc) {
	posts := r.Group("/api/posts")
	posts.GET("/:post_id", middleware.OptionalAuthMiddleware(), h.GetPost)

	auth := posts.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("", writeLimit, h.CreatePost)
		auth.GET("/feed", h.GetFeed)
		auth.GET("/me", h.GetMyPosts)
		auth.DELETE("/:post_id", writeLimit, h.DeletePost)
	}

	r.GET("/api/users/:user_id/posts", middleware.OptionalAuthMiddleware(), h.GetUserPosts)
}
