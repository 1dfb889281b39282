package handler

import (
	"net/http"

	"social_backend/internal/domain/comment/model"
	"social_backend/internal/domain/comment/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/pkg/metrics"
	"social_backend/pkg/response"
	"social_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service service.CommentService
	metrics *metrics.MetricsCollector
}

func NewCommentHandler(s service.CommentService, m *metrics.MetricsCollector) *CommentHandler {
	return &CommentHandler{service: s, metrics: m}
}

// CommentRequest 发表/修改评论请求
type CommentRequest struct {
	Content string `json:"content"`
}

func idParam(c *gin.Context, name, msg string) (uint, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, msg)
		return 0, false
	}
	return id, true
}

// CreateComment 发表评论
// @Summary 发表评论
// @Tags Comment
// @Param post_id path int true "帖子ID"
// @Param request body CommentRequest true "评论内容"
// @Success 201 {object} model.Comment
// @Router /api/posts/{post_id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := idParam(c, "post_id", "Invalid post ID")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	comment, err := h.service.CreateComment(c.Request.Context(), userID, postID, req.Content)
	h.metrics.RecordEngagement("comment", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, comment)
}

// UpdateComment 修改评论
// @Summary 修改评论
// @Tags Comment
// @Param comment_id path int true "评论ID"
// @Param request body CommentRequest true "评论内容"
// @Success 200 {object} model.Comment
// @Router /api/comments/{comment_id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := idParam(c, "comment_id", "Invalid comment ID")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	comment, err := h.service.UpdateComment(c.Request.Context(), commentID, userID, req.Content)
	h.metrics.RecordEngagement("comment_update", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论
// @Summary 删除评论
// @Tags Comment
// @Param comment_id path int true "评论ID"
// @Router /api/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := idParam(c, "comment_id", "Invalid comment ID")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)
	comment, err := h.service.DeleteComment(c.Request.Context(), commentID, userID)
	h.metrics.RecordEngagement("comment_delete", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, comment)
}

// GetPostComments 帖子评论列表
// @Summary 帖子评论列表
// @Tags Comment
// @Param post_id path int true "帖子ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.OffsetResult
// @Router /api/posts/{post_id}/comments [get]
func (h *CommentHandler) GetPostComments(c *gin.Context) {
	postID, ok := idParam(c, "post_id", "Invalid post ID")
	if !ok {
		return
	}

	var p utils.OffsetPagination
	c.ShouldBindQuery(&p)
	p.Normalize()

	comments, err := h.service.ListPostComments(c.Request.Context(), postID, p.Limit, p.Offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.OffsetResult{List: comments, Limit: p.Limit, Offset: p.Offset})
}

// GetComment 单条评论
// @Summary 评论详情
// @Tags Comment
// @Param comment_id path int true "评论ID"
// @Success 200 {object} model.CommentWithAuthor
// @Router /api/comments/{comment_id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, ok := idParam(c, "comment_id", "Invalid comment ID")
	if !ok {
		return
	}

	comment, err := h.service.GetCommentByID(c.Request.Context(), commentID)
	if err != nil {
		response.FromReadError(c, err)
		return
	}
	response.Success(c, comment)
}

// GetCommentCount 评论数
// @Summary 帖子评论数
// @Tags Comment
// @Param post_id path int true "帖子ID"
// @Success 200 {object} model.CommentCount
// @Router /api/posts/{post_id}/comments/count [get]
func (h *CommentHandler) GetCommentCount(c *gin.Context) {
	postID, ok := idParam(c, "post_id", "Invalid post ID")
	if !ok {
		return
	}

	count, err := h.service.CountComments(c.Request.Context(), postID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, model.CommentCount{PostID: postID, Count: count})
}
