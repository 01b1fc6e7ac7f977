package service

import (
	"context"
	"errors"

	"booktrack/internal/domain"
	evtivl "booktrack/internal/events/interval"
	"booktrack/internal/repository"
	"booktrack/pkg/logger"
)

var (
	// ErrBookNotFound 书不存在
	ErrBookNotFound = repository.ErrBookNotFound
	// ErrInvalidPageRange 页码范围不合法
	ErrInvalidPageRange = errors.New("页码范围不合法")
)

//go:generate mockgen -source=interval.go -package=svcmocks -destination=mocks/interval.mock.go IntervalService
type IntervalService interface {
	// Submit 提交一条阅读区间
	// 完全相同的区间重复提交是幂等的：直接返回成功，什么副作用都没有
	Submit(ctx context.Context, iv domain.ReadingInterval) error
	// SubmitBatch 批量提交，单条失败不影响其余条目
	SubmitBatch(ctx context.Context, uid int64, ivs []domain.ReadingInterval) (domain.BatchResult, error)
	// UniquePagesRead 某本书全体用户读过的去重页数
	// 每次都从原始区间实时算，保证按需读取的时候一定是对的
	UniquePagesRead(ctx context.Context, bookId int64) (int64, error)
}

type intervalService struct {
	repo        repository.IntervalRepository
	bookRepo    repository.BookRepository
	rankingRepo repository.RankingRepository
	producer    evtivl.Producer
	l           logger.Logger
}

func NewIntervalService(repo repository.IntervalRepository,
	bookRepo repository.BookRepository,
	rankingRepo repository.RankingRepository,
	producer evtivl.Producer,
	l logger.Logger) IntervalService {
	return &intervalService{
		repo:        repo,
		bookRepo:    bookRepo,
		rankingRepo: rankingRepo,
		producer:    producer,
		l:           l,
	}
}

func (svc *intervalService) Submit(ctx context.Context, iv domain.ReadingInterval) error {
	book, err := svc.bookRepo.FindById(ctx, iv.BookId)
	if errors.Is(err, repository.ErrBookNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		return err
	}
	if iv.StartPage < 1 || iv.EndPage < iv.StartPage || iv.EndPage > book.TotalPages {
		return ErrInvalidPageRange
	}

	err = svc.repo.Create(ctx, iv)
	if errors.Is(err, repository.ErrIntervalDuplicate) {
		// 一模一样的区间已经有了，当成功处理
		// 注意不能走到下面的失效和发事件，不然幂等就是假的
		return nil
	}
	if err != nil {
		return err
	}

	// 新区间可能改变任何一本书的名次，所有 limit 的榜单缓存都要删
	// 失效失败只会造成一个 TTL 窗口内的脏榜单，不值得让提交跟着失败
	err = svc.rankingRepo.InvalidateAll(ctx)
	if err != nil {
		svc.l.Error("失效榜单缓存失败",
			logger.Int64("bookId", iv.BookId),
			logger.Error(err))
	}

	// 发重算事件，同样是次要副作用，失败只记日志
	// 丢了事件顶多是冗余页数旧一点，下一次写入会补上
	err = svc.producer.ProduceRecalcEvent(ctx, evtivl.RecalcEvent{
		BookId: iv.BookId,
	})
	if err != nil {
		svc.l.Error("发送重算事件失败",
			logger.Int64("bookId", iv.BookId),
			logger.Error(err))
	}
	return nil
}

func (svc *intervalService) SubmitBatch(ctx context.Context, uid int64, ivs []domain.ReadingInterval) (domain.BatchResult, error) {
	var res domain.BatchResult
	for i, iv := range ivs {
		iv.Uid = uid
		err := svc.Submit(ctx, iv)
		if err == nil {
			res.SuccessCount++
			continue
		}
		res.FailedCount++
		res.Errors = append(res.Errors, domain.BatchError{
			Index:  i,
			BookId: iv.BookId,
			Msg:    svc.batchErrMsg(err),
		})
	}
	return res, nil
}

func (svc *intervalService) UniquePagesRead(ctx context.Context, bookId int64) (int64, error) {
	_, err := svc.bookRepo.FindById(ctx, bookId)
	if errors.Is(err, repository.ErrBookNotFound) {
		return 0, ErrBookNotFound
	}
	if err != nil {
		return 0, err
	}
	// 故意不读书籍表里面异步回写的冗余页数，那个可能是旧的
	ranges, err := svc.repo.GetRangesByBook(ctx, bookId)
	if err != nil {
		return 0, err
	}
	return domain.UniquePages(ranges), nil
}

func (svc *intervalService) batchErrMsg(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "书籍不存在"
	case errors.Is(err, ErrInvalidPageRange):
		return "页码范围不合法"
	default:
		return "系统错误"
	}
}
