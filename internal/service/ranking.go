package service

import (
	"context"
	"errors"

	"booktrack/internal/domain"
	"booktrack/internal/repository"
	"booktrack/pkg/logger"

	"github.com/ecodeclub/ekit/queue"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidLimit 榜单条数超出 [1, 100]
var ErrInvalidLimit = errors.New("limit 超出范围")

const (
	minTopLimit = 1
	maxTopLimit = 100
)

//go:generate mockgen -source=ranking.go -package=svcmocks -destination=mocks/ranking.mock.go RankingService
type RankingService interface {
	// TopBooks 按去重阅读页数取前 limit 本书，cache-aside
	TopBooks(ctx context.Context, limit int) ([]domain.TopBook, error)
	// WarmUp 预热常用 limit 的榜单缓存，定时任务调用
	WarmUp(ctx context.Context) error
	// InvalidateCache 手动清掉榜单缓存
	InvalidateCache(ctx context.Context)
	CacheStats() domain.CacheStats
}

type BatchRankingService struct {
	bookRepo     repository.BookRepository
	intervalRepo repository.IntervalRepository
	repo         repository.RankingRepository
	l            logger.Logger
	// 预热的时候算哪几个 limit
	warmLimits []int
}

func NewBatchRankingService(bookRepo repository.BookRepository,
	intervalRepo repository.IntervalRepository,
	repo repository.RankingRepository,
	l logger.Logger) RankingService {
	return &BatchRankingService{
		bookRepo:     bookRepo,
		intervalRepo: intervalRepo,
		repo:         repo,
		l:            l,
		warmLimits:   []int{5, 10, 100},
	}
}

func (b *BatchRankingService) TopBooks(ctx context.Context, limit int) ([]domain.TopBook, error) {
	if limit < minTopLimit || limit > maxTopLimit {
		return nil, ErrInvalidLimit
	}
	res, err := b.repo.GetTopBooks(ctx, limit)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, repository.ErrRankingNotCached) {
		// Redis 出问题了也不影响请求，降级成实时计算
		b.l.Error("读取榜单缓存失败",
			logger.Int("limit", limit),
			logger.Error(err))
	}

	res, err = b.rankTopBooks(ctx, limit)
	if err != nil {
		return nil, err
	}
	// 回填缓存，失败只记日志，数据已经算出来了
	err = b.repo.ReplaceTopBooks(ctx, limit, res)
	if err != nil {
		b.l.Error("回填榜单缓存失败",
			logger.Int("limit", limit),
			logger.Error(err))
	}
	return res, nil
}

func (b *BatchRankingService) WarmUp(ctx context.Context) error {
	maxLimit := 0
	for _, limit := range b.warmLimits {
		if limit > maxLimit {
			maxLimit = limit
		}
	}
	// 算一次最大的，各个 limit 直接截取，不用重复算
	books, err := b.rankTopBooks(ctx, maxLimit)
	if err != nil {
		return err
	}
	for _, limit := range b.warmLimits {
		n := limit
		if n > len(books) {
			n = len(books)
		}
		err = b.repo.ReplaceTopBooks(ctx, limit, books[:n])
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *BatchRankingService) InvalidateCache(ctx context.Context) {
	err := b.repo.InvalidateAll(ctx)
	if err != nil {
		// 删不掉就等 TTL 自己过期，脏数据窗口是有界的
		b.l.Error("清理榜单缓存失败", logger.Error(err))
	}
}

func (b *BatchRankingService) CacheStats() domain.CacheStats {
	return b.repo.Stats()
}

// rankTopBooks 实时计算榜单
// 注意这里是从原始区间现算的，故意不读书籍表里面的冗余页数，
// 冗余字段是异步回写的，可能落后于真实数据
func (b *BatchRankingService) rankTopBooks(ctx context.Context, limit int) ([]domain.TopBook, error) {
	var (
		books  []domain.Book
		ranges map[int64][]domain.PageRange
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		books, err = b.bookRepo.ListAll(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		ranges, err = b.intervalRepo.GetRangesGroupedByBook(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 用优先级队列维持住前 limit 名
	// 没人读过的书也参与排名，页数算 0
	topN := queue.NewPriorityQueue[domain.TopBook](limit, compareTopBooks)
	for _, book := range books {
		tb := domain.TopBook{
			BookId:      book.Id,
			Title:       book.Title,
			TotalPages:  book.TotalPages,
			UniquePages: domain.UniquePages(ranges[book.Id]),
		}
		err := topN.Enqueue(tb)
		if err == queue.ErrOutOfCapacity {
			// 队列满了，踢掉最差的那个
			val, _ := topN.Dequeue()
			if compareTopBooks(val, tb) < 0 {
				_ = topN.Enqueue(tb)
			} else {
				_ = topN.Enqueue(val)
			}
		}
	}

	res := make([]domain.TopBook, topN.Len())
	for i := topN.Len() - 1; i >= 0; i-- {
		val, err := topN.Dequeue()
		if err != nil {
			break
		}
		res[i] = val
	}
	return res, nil
}

// compareTopBooks 名次低的算小，会先被从队列里面踢出去
// 页数多的名次高；页数一样的，标题字典序小的名次高
func compareTopBooks(src, dst domain.TopBook) int {
	if src.UniquePages != dst.UniquePages {
		if src.UniquePages < dst.UniquePages {
			return -1
		}
		return 1
	}
	if src.Title > dst.Title {
		return -1
	}
	if src.Title < dst.Title {
		return 1
	}
	return 0
}
