package comment

import (
	"social_backend/internal/domain/comment/handler"
	"social_backend/internal/domain/comment/repository"
	"social_backend/internal/domain/comment/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommentModule 评论模块
type CommentModule struct{}

func init() {
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 40
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	cRepo := repository.NewCommentRepository(ctx.DB)
	cService := service.NewCommentService(cRepo)
	cHandler := handler.NewCommentHandler(cService, ctx.Metrics)

	setupRoutes(ctx.Router, cHandler, ctx.WriteLimit())
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommentHandler, writeLimit gin.HandlerFunc) {
	posts := r.Group("/api/posts")
	{
		posts.GET("/:post_id/comments", h.GetPostComments)
		posts.GET("/:post_id/comments/count", h.GetCommentCount)
		posts.POST("/:post_id/comments", middleware.AuthMiddleware(), writeLimit, h.CreateComment)
	}

	comments := r.Group("/api/comments")
	comments.GET("/:comment_id", h.GetComment)

	auth := comments.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.PUT("/:comment_id", writeLimit, h.UpdateComment)
		auth.DELETE("/:comment_id", writeLimit, h.DeleteComment)
	}
}
