package web

import (
	"errors"
	"strconv"

	"booktrack/internal/service"
	"booktrack/pkg/ginx"

	"github.com/gin-gonic/gin"
)

var _ handler = (*RankingHandler)(nil)

// RankingHandler 榜单查询和缓存运维接口
type RankingHandler struct {
	svc service.RankingService
}

func NewRankingHandler(svc service.RankingService) *RankingHandler {
	return &RankingHandler{
		svc: svc,
	}
}

func (h *RankingHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/books")
	g.GET("/top", ginx.Wrap(h.TopBooks))
	g.GET("/cache/stats", ginx.Wrap(h.CacheStats))
	g.GET("/cache/clear", ginx.Wrap(h.ClearCache))
}

func (h *RankingHandler) TopBooks(ctx *gin.Context) (ginx.Result, error) {
	const defaultLimit = 5
	limit := defaultLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return ginx.Result{
				Code: 4,
				Msg:  "limit 不是合法的数字",
			}, nil
		}
	}
	books, err := h.svc.TopBooks(ctx.Request.Context(), limit)
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "OK",
			Data: books,
		}, nil
	case errors.Is(err, service.ErrInvalidLimit):
		return ginx.Result{
			Code: 4,
			Msg:  "limit 必须在 1 到 100 之间",
		}, nil
	default:
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
}

func (h *RankingHandler) CacheStats(ctx *gin.Context) (ginx.Result, error) {
	return ginx.Result{
		Msg:  "OK",
		Data: h.svc.CacheStats(),
	}, nil
}

func (h *RankingHandler) ClearCache(ctx *gin.Context) (ginx.Result, error) {
	// 清理失败内部会记日志，对外统一报成功
	// 就算没删掉，缓存也会在一个 TTL 之内自己过期
	h.svc.InvalidateCache(ctx.Request.Context())
	return ginx.Result{
		Msg: "OK",
	}, nil
}
