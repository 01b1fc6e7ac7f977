package ratelimit

import (
	"fmt"
	"net/http"

	"booktrack/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// Builder 用于构建限流中间件
// 以 (客户端 IP, 方法, 路由) 为粒度做固定窗口计数，
// 默认所有路由共用一个 Limiter，也可以针对单个路由单独配置
type Builder struct {
	prefix  string            // 限流 key 的前缀，用于构建唯一的 Redis key
	limiter ratelimit.Limiter // 全局默认的限流器
	// method + path => 该路由专属的限流器
	routes map[string]ratelimit.Limiter
}

func NewBuilder(limiter ratelimit.Limiter) *Builder {
	return &Builder{
		prefix:  "req-limiter",
		limiter: limiter,
		routes:  map[string]ratelimit.Limiter{},
	}
}

// Prefix 设置限流键的前缀，允许根据需要自定义前缀
func (b *Builder) Prefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// ForRoute 给某个路由单独配置限流器，覆盖全局默认值
func (b *Builder) ForRoute(method, path string, limiter ratelimit.Limiter) *Builder {
	b.routes[method+":"+path] = limiter
	return b
}

// Build 创建并返回一个 Gin 中间件处理函数
func (b *Builder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limited, err := b.limit(ctx)
		if err != nil {
			// 限流器本身出错的时候保守做法是拒绝请求，
			// 激进做法是放过去。这里选保守的
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if limited {
			ctx.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		ctx.Next()
	}
}

func (b *Builder) limit(ctx *gin.Context) (bool, error) {
	method := ctx.Request.Method
	path := ctx.FullPath()
	limiter := b.limiter
	if l, ok := b.routes[method+":"+path]; ok {
		limiter = l
	}
	key := fmt.Sprintf("%s:%s:%s:%s", b.prefix, ctx.ClientIP(), method, path)
	return limiter.Limit(ctx, key)
}
