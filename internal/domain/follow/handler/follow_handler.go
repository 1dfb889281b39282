package handler

import (
	"net/http"

	"social_backend/internal/domain/follow/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/pkg/metrics"
	"social_backend/pkg/response"
	"social_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	service service.FollowService
	metrics *metrics.MetricsCollector
}

func NewFollowHandler(s service.FollowService, m *metrics.MetricsCollector) *FollowHandler {
	return &FollowHandler{service: s, metrics: m}
}

// Follow 关注用户
// @Summary 关注用户
// @Tags Follow
// @Param user_id path int true "目标用户ID"
// @Success 200 {object} model.Follow
// @Router /api/users/{user_id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	targetID, err := utils.ParseID(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid user ID")
		return
	}

	followerID, _ := middleware.GetUserID(c)
	follow, err := h.service.Follow(c.Request.Context(), followerID, targetID)
	h.metrics.RecordEngagement("follow", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, follow)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags Follow
// @Param user_id path int true "目标用户ID"
// @Router /api/users/{user_id}/unfollow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	targetID, err := utils.ParseID(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid user ID")
		return
	}

	followerID, _ := middleware.GetUserID(c)
	follow, err := h.service.Unfollow(c.Request.Context(), followerID, targetID)
	h.metrics.RecordEngagement("unfollow", metrics.Outcome(err))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, follow)
}

// GetMyFollowing 我关注的人
// @Summary 我关注的人
// @Tags Follow
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.OffsetResult
// @Router /api/users/following [get]
func (h *FollowHandler) GetMyFollowing(c *gin.Context) {
	var p utils.OffsetPagination
	c.ShouldBindQuery(&p)
	p.Normalize()

	userID, _ := middleware.GetUserID(c)
	users, err := h.service.ListFollowing(c.Request.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.OffsetResult{List: users, Limit: p.Limit, Offset: p.Offset})
}

// GetMyFollowers 关注我的人
// @Summary 我的粉丝
// @Tags Follow
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.OffsetResult
// @Router /api/users/followers [get]
func (h *FollowHandler) GetMyFollowers(c *gin.Context) {
	var p utils.OffsetPagination
	c.ShouldBindQuery(&p)
	p.Normalize()

	userID, _ := middleware.GetUserID(c)
	users, err := h.service.ListFollowers(c.Request.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.OffsetResult{List: users, Limit: p.Limit, Offset: p.Offset})
}

// GetFollowStats 我的关注统计
// @Summary 关注统计
// @Tags Follow
// @Success 200 {object} model.FollowCounts
// @Router /api/users/stats [get]
func (h *FollowHandler) GetFollowStats(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	stats, err := h.service.CountsFor(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, stats)
}
