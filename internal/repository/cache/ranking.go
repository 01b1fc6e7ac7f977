package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"booktrack/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotExist Redis 特有的错误，用于表示键不存在
var ErrKeyNotExist = redis.Nil

// RankingCache 榜单缓存，按 limit 分别缓存
// 任何一次写入都可能改变任何一本书的名次，
// 所以失效的时候要把所有 limit 的缓存一起删掉
type RankingCache interface {
	Get(ctx context.Context, limit int) ([]domain.TopBook, error)
	Set(ctx context.Context, limit int, books []domain.TopBook) error
	// DelAll 删掉所有 limit 变体的榜单缓存
	DelAll(ctx context.Context) error
	// KeyPrefix 和 Expiration 暴露给缓存状态接口用
	KeyPrefix() string
	Expiration() time.Duration
}

type RedisRankingCache struct {
	client     redis.Cmdable
	keyPrefix  string
	expiration time.Duration
}

func NewRedisRankingCache(client redis.Cmdable, expiration time.Duration) RankingCache {
	return &RedisRankingCache{
		client: client,
		// 完整的 key 是 top_books:<limit>
		keyPrefix:  "top_books",
		expiration: expiration,
	}
}

func (r *RedisRankingCache) Get(ctx context.Context, limit int) ([]domain.TopBook, error) {
	val, err := r.client.Get(ctx, r.key(limit)).Bytes()
	if err != nil {
		return nil, err
	}
	var res []domain.TopBook
	err = json.Unmarshal(val, &res)
	return res, err
}

func (r *RedisRankingCache) Set(ctx context.Context, limit int, books []domain.TopBook) error {
	val, err := json.Marshal(books)
	if err != nil {
		return err
	}
	// 过期时间要设置得比失效通知的间隔长一点，
	// 靠显式失效保证正确性，TTL 只是兜底
	return r.client.Set(ctx, r.key(limit), val, r.expiration).Err()
}

func (r *RedisRankingCache) DelAll(ctx context.Context) error {
	// SCAN 逐批枚举前缀下的 key，不用 KEYS，避免阻塞 Redis
	iter := r.client.Scan(ctx, 0, r.keyPrefix+":*", 100).Iterator()
	keys := make([]string, 0, 8)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisRankingCache) KeyPrefix() string {
	return r.keyPrefix
}

func (r *RedisRankingCache) Expiration() time.Duration {
	return r.expiration
}

func (r *RedisRankingCache) key(limit int) string {
	return fmt.Sprintf("%s:%d", r.keyPrefix, limit)
}
