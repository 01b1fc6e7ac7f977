package web

import (
	"github.com/gin-gonic/gin"
)

// handler 定义了注册路由接口的接口类型
type handler interface {
	RegisterRoutes(s *gin.Engine)
}

// SubmitIntervalReq 提交单条阅读区间的请求
type SubmitIntervalReq struct {
	Uid       int64 `json:"uid"`
	BookId    int64 `json:"bookId"`
	StartPage int64 `json:"startPage"`
	EndPage   int64 `json:"endPage"`
}

// BatchIntervalReq 批量提交阅读区间的请求
type BatchIntervalReq struct {
	Uid       int64          `json:"uid"`
	Intervals []IntervalItem `json:"intervals"`
}

type IntervalItem struct {
	BookId    int64 `json:"bookId"`
	StartPage int64 `json:"startPage"`
	EndPage   int64 `json:"endPage"`
}

// BookReq 建书和改书共用的请求
type BookReq struct {
	Id         int64  `json:"id"`
	Title      string `json:"title"`
	TotalPages int64  `json:"totalPages"`
}
