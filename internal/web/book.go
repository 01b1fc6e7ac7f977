package web

import (
	"errors"

	"booktrack/internal/domain"
	"booktrack/internal/service"
	"booktrack/pkg/ginx"

	"github.com/gin-gonic/gin"
)

var _ handler = (*BookHandler)(nil)

// BookHandler 建书和改书的入口
// 这部分属于外部协作方的职责，保留下来主要是为了让整条链路能跑通
type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{
		svc: svc,
	}
}

func (h *BookHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/books")
	g.POST("", ginx.WrapBody[BookReq](h.Create))
	g.POST("/edit", ginx.WrapBody[BookReq](h.Edit))
}

func (h *BookHandler) Create(ctx *gin.Context, req BookReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Book{
		Title:      req.Title,
		TotalPages: req.TotalPages,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "OK",
			Data: id,
		}, nil
	case errors.Is(err, service.ErrInvalidTotalPages):
		return ginx.Result{
			Code: 4,
			Msg:  "总页数必须是正数",
		}, nil
	default:
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
}

func (h *BookHandler) Edit(ctx *gin.Context, req BookReq) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), domain.Book{
		Id:         req.Id,
		Title:      req.Title,
		TotalPages: req.TotalPages,
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
	case errors.Is(err, service.ErrInvalidTotalPages):
		return ginx.Result{
			Code: 4,
			Msg:  "总页数不合法",
		}, nil
	default:
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
}
