package response

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Created 资源创建成功
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

// Accepted 删除等异步类操作受理成功
func Accepted(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusAccepted, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, errType string, message string) {
	c.JSON(status, dto.ErrorResponse{
		Type:  errType,
		Error: message,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.TypeMissingData, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.TypeMissingData, "Json错误")
		return
	}

	status, ok := service.ErrorCode[err]
	if !ok {
		log.Error("Error", "err", err)
		Fail(c, http.StatusInternalServerError, service.TypeServerError, "服务器内部错误")
		return
	}
	Fail(c, status, service.ErrorType[err], err.Error())
}
