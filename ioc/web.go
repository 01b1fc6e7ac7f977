package ioc

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"booktrack/internal/web"
	"booktrack/pkg/ginx"
	"booktrack/pkg/ginx/middleware/accesslog"
	"booktrack/pkg/ginx/middleware/metrics"
	glimit "booktrack/pkg/ginx/middleware/ratelimit"
	"booktrack/pkg/logger"
	"booktrack/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func InitWebServer(funcs []gin.HandlerFunc,
	intervalHdl *web.IntervalHandler,
	rankingHdl *web.RankingHandler,
	bookHdl *web.BookHandler) *gin.Engine {
	server := gin.Default()
	gin.ForceConsoleColor()

	server.Use(funcs...)

	intervalHdl.RegisterRoutes(server)
	rankingHdl.RegisterRoutes(server)
	bookHdl.RegisterRoutes(server)

	return server
}

func GinMiddlewares(cmd redis.Cmdable, l logger.Logger) []gin.HandlerFunc {
	ginx.SetLogger(l)

	pb := &metrics.PrometheusBuilder{
		Namespace:  "booktrack_server",
		Subsystem:  "booktrack",
		Name:       "gin_http",
		InstanceID: "my-instance-1",
		Help:       "GIN 中 HTTP 请求",
	}

	return []gin.HandlerFunc{
		// 跨域
		corsHandler(),

		// prometheus 中间件
		pb.BuildResponseTime(),
		pb.BuildActiveRequest(),

		// 限流
		rateLimitMiddleware(cmd),

		// 访问日志中间件
		accesslog.NewMiddlewareBuilder(func(ctx context.Context, al accesslog.AccessLog) {
			l.Debug("GIN 收到请求", logger.Field{
				Key:   "req",
				Value: al,
			})
		}).AllowReqBody().Build(),
	}
}

// rateLimitMiddleware 固定窗口限流
// 全局一个默认阈值，写入接口单独一个更严格的阈值
func rateLimitMiddleware(cmd redis.Cmdable) gin.HandlerFunc {
	type RouteLimit struct {
		Rate      int `yaml:"rate"`
		WindowSec int `yaml:"windowSec"`
	}
	type Config struct {
		Global RouteLimit `yaml:"global"`
		Submit RouteLimit `yaml:"submit"`
	}
	c := Config{
		Global: RouteLimit{Rate: 100, WindowSec: 60},
		Submit: RouteLimit{Rate: 20, WindowSec: 30},
	}
	err := viper.UnmarshalKey("ratelimit", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}

	global := ratelimit.NewRedisFixedWindowLimiter(cmd,
		time.Duration(c.Global.WindowSec)*time.Second, c.Global.Rate)
	submit := ratelimit.NewRedisFixedWindowLimiter(cmd,
		time.Duration(c.Submit.WindowSec)*time.Second, c.Submit.Rate)
	return glimit.NewBuilder(global).
		ForRoute(http.MethodPost, "/books/reading-interval", submit).
		ForRoute(http.MethodPost, "/books/reading-intervals/batch", submit).
		Build()
}

func corsHandler() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "baidu.com")
		},
		MaxAge: 12 * time.Hour,
	})
}
