package handler

import (
	"errors"
	"net/http"

	"social_backend/internal/domain/user/service"
	"social_backend/internal/pkg/middleware"
	"social_backend/pkg/response"
	"social_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterInput 注册输入
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	FullName string `json:"full_name" binding:"max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginInput 登录输入
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SearchQuery 搜索参数
type SearchQuery struct {
	utils.OffsetPagination
	Q string `form:"q"`
}

// Register 处理注册请求
// @Summary 注册
// @Tags User
// @Accept json
// @Produce json
// @Param input body RegisterInput true "注册信息"
// @Success 201 {object} model.User
// @Router /api/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), input.Username, input.FullName, input.Email, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, user)
}

// Login 处理登录请求
// @Summary 登录
// @Tags User
// @Accept json
// @Produce json
// @Param input body LoginInput true "登录信息"
// @Router /api/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Invalid username or password")
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": user})
}

// GetProfile 获取用户资料
// @Summary 用户资料
// @Tags User
// @Param user_id path int true "用户ID"
// @Router /api/users/{user_id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid user ID")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID, middleware.GetViewerID(c))
	if err != nil {
		response.FromReadError(c, err)
		return
	}
	response.Success(c, profile)
}

// SearchUsers 搜索用户
// @Summary 搜索用户
// @Tags User
// @Param q query string true "关键字"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Router /api/users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	q.Normalize()

	users, err := h.service.SearchUsers(c.Request.Context(), q.Q, q.Limit, q.Offset)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, utils.OffsetResult{List: users, Limit: q.Limit, Offset: q.Offset})
}

// DeleteAccount 注销当前账号
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	if err := h.service.DeleteAccount(c.Request.Context(), userID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, "success")
}
