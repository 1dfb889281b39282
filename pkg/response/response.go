package response

import (
	"errors"
	"net/http"

	"social_backend/internal/pkg/bizerr"
	"social_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`    // 业务码
	Message string      `json:"message"` // 提示信息
	Data    interface{} `json:"data"`    // 数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Success: false,
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// Fail 业务失败响应 (HTTP 200, 业务码非 0)
func Fail(c *gin.Context, errCode int, msg string) {
	c.JSON(http.StatusOK, Response{
		Success: false,
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// FromError 将服务层错误写为响应
// 业务错误统一 400，内部故障记录日志后返回 500，不暴露原因
func FromError(c *gin.Context, err error) {
	writeError(c, err, http.StatusBadRequest)
}

// FromReadError 读接口使用：NotFound 返回 404
func FromReadError(c *gin.Context, err error) {
	writeError(c, err, http.StatusNotFound)
}

func writeError(c *gin.Context, err error, notFoundStatus int) {
	var be *bizerr.Error
	if !errors.As(err, &be) || be.Kind == bizerr.KindInternal {
		logger.L().Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("RequestID")),
		)
		Error(c, http.StatusInternalServerError, ErrServerInternal, "Internal server error")
		return
	}

	status := http.StatusBadRequest
	if be.Kind == bizerr.KindNotFound {
		status = notFoundStatus
	}
	Error(c, status, codeFor(be.Kind), be.Message)
}

func codeFor(kind bizerr.Kind) int {
	switch kind {
	case bizerr.KindInvalidInput:
		return ErrInvalidParam
	case bizerr.KindSelfReference:
		return ErrSelfReference
	case bizerr.KindNotFound:
		return ErrNotFound
	case bizerr.KindAlreadyExists:
		return ErrAlreadyExists
	case bizerr.KindCommentsDisabled:
		return ErrCommentsDisabled
	default:
		return ErrServerInternal
	}
}
