package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"booktrack/internal/domain"

	"github.com/redis/go-redis/v9"
)

// BookCache 书籍信息的缓存
// 提交阅读区间的时候都要查一次书来校验页码范围，命中率很高
type BookCache interface {
	Get(ctx context.Context, id int64) (domain.Book, error)
	Set(ctx context.Context, b domain.Book) error
	Del(ctx context.Context, id int64) error
}

type RedisBookCache struct {
	cmd        redis.Cmdable
	expiration time.Duration
}

func NewRedisBookCache(cmd redis.Cmdable) BookCache {
	return &RedisBookCache{
		cmd:        cmd,
		expiration: time.Minute * 15,
	}
}

func (cache *RedisBookCache) Get(ctx context.Context, id int64) (domain.Book, error) {
	data, err := cache.cmd.Get(ctx, cache.key(id)).Result()
	if err != nil {
		return domain.Book{}, err
	}
	var b domain.Book
	err = json.Unmarshal([]byte(data), &b)
	return b, err
}

func (cache *RedisBookCache) Set(ctx context.Context, b domain.Book) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return cache.cmd.Set(ctx, cache.key(b.Id), data, cache.expiration).Err()
}

func (cache *RedisBookCache) Del(ctx context.Context, id int64) error {
	return cache.cmd.Del(ctx, cache.key(id)).Err()
}

func (cache *RedisBookCache) key(id int64) string {
	return fmt.Sprintf("book:info:%d", id)
}
