package ioc

import (
	"fmt"
	"time"

	"booktrack/internal/repository/cache"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func InitRedis() redis.Cmdable {
	type Config struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	}
	c := Config{
		Addr:     "127.0.0.1:6379",
		Password: "",
		DB:       0,
	}
	err := viper.UnmarshalKey("redis", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}

	cmd := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	return cmd
}

func InitRankingCache(cmd redis.Cmdable) cache.RankingCache {
	type Config struct {
		TTLSec int64 `yaml:"ttlSec"`
	}
	c := Config{
		// 过期时间要比预热任务的间隔长，正确性靠显式失效保证
		TTLSec: 180,
	}
	err := viper.UnmarshalKey("ranking", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}
	return cache.NewRedisRankingCache(cmd, time.Duration(c.TTLSec)*time.Second)
}
