package repository

import (
	"context"

	"booktrack/internal/domain"
	"booktrack/internal/repository/cache"
)

// ErrRankingNotCached 榜单缓存里面没有对应 limit 的数据
var ErrRankingNotCached = cache.ErrKeyNotExist

//go:generate mockgen -source=ranking.go -package=repomocks -destination=mocks/ranking.mock.go RankingRepository
type RankingRepository interface {
	GetTopBooks(ctx context.Context, limit int) ([]domain.TopBook, error)
	ReplaceTopBooks(ctx context.Context, limit int, books []domain.TopBook) error
	// InvalidateAll 删掉所有 limit 变体的榜单缓存
	InvalidateAll(ctx context.Context) error
	Stats() domain.CacheStats
}

type CachedRankingRepository struct {
	cache cache.RankingCache
}

func NewCachedRankingRepository(cache cache.RankingCache) RankingRepository {
	return &CachedRankingRepository{
		cache: cache,
	}
}

func (c *CachedRankingRepository) GetTopBooks(ctx context.Context, limit int) ([]domain.TopBook, error) {
	return c.cache.Get(ctx, limit)
}

func (c *CachedRankingRepository) ReplaceTopBooks(ctx context.Context, limit int, books []domain.TopBook) error {
	return c.cache.Set(ctx, limit, books)
}

func (c *CachedRankingRepository) InvalidateAll(ctx context.Context) error {
	return c.cache.DelAll(ctx)
}

func (c *CachedRankingRepository) Stats() domain.CacheStats {
	return domain.CacheStats{
		Enabled:        true,
		TTL:            c.cache.Expiration().Milliseconds(),
		CacheKeyPrefix: c.cache.KeyPrefix(),
	}
}
