package handler

import (
	"net/http"

	"social_backend/internal/domain/post/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/pkg/metrics"
	"social_backend/pkg/response"
	"social_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	service service.PostService
	metrics *metrics.MetricsCollector
}

func NewPostHandler(s service.PostService, m *metrics.MetricsCollector) *PostHandler {
	return &PostHandler{service: s, metrics: m}
}

// CreatePostRequest 发帖请求
type CreatePostRequest struct {
	Content         string  `json:"content"`
	MediaURL        *string `json:"media_url"`
	CommentsEnabled *bool   `json:"comments_enabled"` // 默认开启评论
}

// CreatePost 发帖
// @Summary 发布帖子
// @Tags Post
// @Param request body CreatePostRequest true "帖子内容"
// @Success 201 {object} model.Post
// @Router /api/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	commentsEnabled := true
	if req.CommentsEnabled != nil {
		commentsEnabled = *req.CommentsEnabled
	}

	userID, _ := middleware.GetUserID(c)
	post, err := h.service.CreatePost(c.Request.Context(), userID, req.Content, req.MediaURL, commentsEnabled)
	h.metrics.RecordEngagement("post", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, post)
}

// DeletePost 删除帖子
// @Summary 删除帖子
// @Tags Post
// @Param post_id path int true "帖子ID"
// @Router /api/posts/{post_id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := utils.ParseID(c.Param("post_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid post ID")
		return
	}

	userID, _ := middleware.GetUserID(c)
	err = h.service.DeletePost(c.Request.Context(), postID, userID)
	h.metrics.RecordEngagement("post_delete", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": postID})
}

// GetPost 帖子详情
// @Summary 帖子详情
// @Tags Post
// @Param post_id path int true "帖子ID"
// @Success 200 {object} model.PostView
// @Router /api/posts/{post_id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := utils.ParseID(c.Param("post_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid post ID")
		return
	}

	view, err := h.service.GetPostView(c.Request.Context(), postID, middleware.GetViewerID(c))
	if err != nil {
		response.FromReadError(c, err)
		return
	}
	response.Success(c, view)
}

// GetUserPosts 用户帖子列表
// @Summary 用户帖子列表
// @Tags Post
// @Param user_id path int true "用户ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} utils.PageResult
// @Router /api/users/{user_id}/posts [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid user ID")
		return
	}
	h.listUserPosts(c, userID, middleware.GetViewerID(c))
}

// GetMyPosts 我的帖子
// @Summary 我的帖子
// @Tags Post
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} utils.PageResult
// @Router /api/posts/me [get]
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	h.listUserPosts(c, userID, &userID)
}

func (h *PostHandler) listUserPosts(c *gin.Context, userID uint, viewerID *uint) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.Normalize()

	posts, hasMore, err := h.service.ListUserPosts(c.Request.Context(), userID, viewerID, p.Page, p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.metrics.ObservePageSize("user_posts", len(posts))
	response.Success(c, utils.PageResult{List: posts, Page: p.Page, Limit: p.Limit, HasMore: hasMore})
}

// GetFeed 动态流
// @Summary 动态流
// @Tags Post
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} utils.PageResult
// @Router /api/posts/feed [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.Normalize()

	userID, _ := middleware.GetUserID(c)
	posts, hasMore, err := h.service.GetFeed(c.Request.Context(), userID, p.Page, p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.metrics.ObservePageSize("feed", len(posts))
	response.Success(c, utils.PageResult{List: posts, Page: p.Page, Limit: p.Limit, HasMore: hasMore})
}
