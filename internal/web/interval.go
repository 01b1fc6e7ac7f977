package web

import (
	"errors"
	"strconv"

	"booktrack/internal/domain"
	"booktrack/internal/service"
	"booktrack/pkg/ginx"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

var _ handler = (*IntervalHandler)(nil)

// IntervalHandler 处理阅读区间提交相关的 HTTP 请求
type IntervalHandler struct {
	svc service.IntervalService
}

func NewIntervalHandler(svc service.IntervalService) *IntervalHandler {
	return &IntervalHandler{
		svc: svc,
	}
}

func (h *IntervalHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/books")
	g.POST("/reading-interval", ginx.WrapBody[SubmitIntervalReq](h.Submit))
	g.POST("/reading-intervals/batch", ginx.WrapBody[BatchIntervalReq](h.SubmitBatch))
	g.GET("/read-pages/:id", ginx.Wrap(h.UniquePagesRead))
}

func (h *IntervalHandler) Submit(ctx *gin.Context, req SubmitIntervalReq) (ginx.Result, error) {
	err := h.svc.Submit(ctx.Request.Context(), domain.ReadingInterval{
		Uid:       req.Uid,
		BookId:    req.BookId,
		StartPage: req.StartPage,
		EndPage:   req.EndPage,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Msg: "OK",
		}, nil
	case errors.Is(err, service.ErrBookNotFound):
		return ginx.Result{
			Code: 4,
			Msg:  "书籍不存在",
		}, nil
	case errors.Is(err, service.ErrInvalidPageRange):
		return ginx.Result{
			Code: 4,
			Msg:  "页码范围不合法",
		}, nil
	default:
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
}

func (h *IntervalHandler) UniquePagesRead(ctx *gin.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ginx.Result{
			Code: 4,
			Msg:  "id 不是合法的数字",
		}, nil
	}
	pages, err := h.svc.UniquePagesRead(ctx.Request.Context(), id)
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "OK",
			Data: pages,
		}, nil
	case errors.Is(err, service.ErrBookNotFound):
		return ginx.Result{
			Code: 4,
			Msg:  "书籍不存在",
		}, nil
	default:
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
}

func (h *IntervalHandler) SubmitBatch(ctx *gin.Context, req BatchIntervalReq) (ginx.Result, error) {
	ivs := slice.Map[IntervalItem, domain.ReadingInterval](req.Intervals,
		func(idx int, src IntervalItem) domain.ReadingInterval {
			return domain.ReadingInterval{
				BookId:    src.BookId,
				StartPage: src.StartPage,
				EndPage:   src.EndPage,
			}
		})
	res, err := h.svc.SubmitBatch(ctx.Request.Context(), req.Uid, ivs)
	if err != nil {
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
	return ginx.Result{
		Msg:  "OK",
		Data: res,
	}, nil
}
