package ginx

import (
	"net/http"

	"booktrack/pkg/logger"

	"github.com/gin-gonic/gin"
)

var log logger.Logger = logger.NewNopLogger()

// SetLogger 因为泛型函数的限制，这里只能用包变量来配置日志
func SetLogger(l logger.Logger) {
	log = l
}

// WrapBody 包装一类"绑定请求体 + 执行业务逻辑 + 返回 Result"的 handler
func WrapBody[Req any](fn func(*gin.Context, Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			log.Error("解析请求失败", logger.Error(err))
			return
		}
		res, err := fn(ctx, req)
		if err != nil {
			log.Error("执行业务逻辑失败",
				logger.String("path", ctx.Request.URL.Path),
				logger.Error(err))
		}
		ctx.JSON(http.StatusOK, res)
	}
}

// Wrap 包装没有请求体的 handler
func Wrap(fn func(*gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := fn(ctx)
		if err != nil {
			log.Error("执行业务逻辑失败",
				logger.String("path", ctx.Request.URL.Path),
				logger.Error(err))
		}
		ctx.JSON(http.StatusOK, res)
	}
}
