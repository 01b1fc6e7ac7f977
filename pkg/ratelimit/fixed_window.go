package ratelimit

import (
	_ "embed"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/net/context"
)

//go:embed fixed_window.lua
var luaFixedWindow string

// RedisFixedWindowLimiter 基于 Redis 的固定窗口限流
// 计数器放在 Redis 里面，多个实例共享同一份限流状态
type RedisFixedWindowLimiter struct {
	cmd redis.Cmdable
	// 窗口大小
	interval time.Duration
	// 窗口内允许的最大请求数
	rate int
}

func NewRedisFixedWindowLimiter(cmd redis.Cmdable, interval time.Duration, rate int) *RedisFixedWindowLimiter {
	return &RedisFixedWindowLimiter{
		cmd:      cmd,
		interval: interval,
		rate:     rate,
	}
}

func (r *RedisFixedWindowLimiter) Limit(ctx context.Context, key string) (bool, error) {
	// 读计数、判断、自增和设置过期时间必须是原子的，
	// 所以用 Lua 脚本来执行
	return r.cmd.Eval(ctx, luaFixedWindow, []string{key},
		r.interval.Milliseconds(), r.rate).Bool()
}
