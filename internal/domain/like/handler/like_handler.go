package handler

import (
	"net/http"

	"social_backend/internal/domain/like/model"
	"social_backend/internal/domain/like/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/pkg/metrics"
	"social_backend/pkg/response"
	"social_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	service service.LikeService
	metrics *metrics.MetricsCollector
}

func NewLikeHandler(s service.LikeService, m *metrics.MetricsCollector) *LikeHandler {
	return &LikeHandler{service: s, metrics: m}
}

func postIDParam(c *gin.Context) (uint, bool) {
	postID, err := utils.ParseID(c.Param("post_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid post ID")
		return 0, false
	}
	return postID, true
}

// LikePost 点赞
// @Summary 点赞帖子
// @Tags Like
// @Param post_id path int true "帖子ID"
// @Success 200 {object} model.Like
// @Router /api/posts/{post_id}/like [post]
func (h *LikeHandler) LikePost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)
	like, err := h.service.LikePost(c.Request.Context(), userID, postID)
	h.metrics.RecordEngagement("like", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, like)
}

// UnlikePost 取消点赞
// @Summary 取消点赞
// @Tags Like
// @Param post_id path int true "帖子ID"
// @Router /api/posts/{post_id}/like [delete]
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)
	like, err := h.service.UnlikePost(c.Request.Context(), userID, postID)
	h.metrics.RecordEngagement("unlike", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, like)
}

// GetPostLikers 点赞用户列表
// @Summary 帖子点赞用户
// @Tags Like
// @Param post_id path int true "帖子ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.OffsetResult
// @Router /api/posts/{post_id}/likes [get]
func (h *LikeHandler) GetPostLikers(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	var p utils.OffsetPagination
	c.ShouldBindQuery(&p)
	p.Normalize()

	likers, err := h.service.ListPostLikers(c.Request.Context(), postID, p.Limit, p.Offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.OffsetResult{List: likers, Limit: p.Limit, Offset: p.Offset})
}

// GetMyLikedPosts 我点赞过的帖子
// @Summary 我的点赞
// @Tags Like
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.OffsetResult
// @Router /api/users/me/likes [get]
func (h *LikeHandler) GetMyLikedPosts(c *gin.Context) {
	var p utils.OffsetPagination
	c.ShouldBindQuery(&p)
	p.Normalize()

	userID, _ := middleware.GetUserID(c)
	posts, err := h.service.ListUserLikedPosts(c.Request.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.OffsetResult{List: posts, Limit: p.Limit, Offset: p.Offset})
}

// GetLikeCount 点赞数
// @Summary 帖子点赞数
// @Tags Like
// @Param post_id path int true "帖子ID"
// @Success 200 {object} model.LikeCount
// @Router /api/posts/{post_id}/likes/count [get]
func (h *LikeHandler) GetLikeCount(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	count, err := h.service.CountLikes(c.Request.Context(), postID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, model.LikeCount{PostID: postID, Count: count})
}

// GetLikeStatus 当前用户是否点赞
// @Summary 点赞状态
// @Tags Like
// @Param post_id path int true "帖子ID"
// @Success 200 {object} model.LikeStatus
// @Router /api/posts/{post_id}/likes/status [get]
func (h *LikeHandler) GetLikeStatus(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)
	liked, err := h.service.HasLiked(c.Request.Context(), userID, postID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, model.LikeStatus{PostID: postID, HasLiked: liked})
}
