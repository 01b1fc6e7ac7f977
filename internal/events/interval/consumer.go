package interval

import (
	"context"
	"time"

	"booktrack/internal/domain"
	"booktrack/internal/repository"
	"booktrack/pkg/logger"
	"booktrack/pkg/saramax"

	"github.com/IBM/sarama"
)

// RecalcReadPagesBatchConsumer 批量消费重算事件
// 重新算一本书的去重页数，回写到书籍表的冗余字段上
// 这个值只用于展示，榜单的实时路径不读它，算错或者算晚了都不致命
type RecalcReadPagesBatchConsumer struct {
	client       sarama.Client
	intervalRepo repository.IntervalRepository
	bookRepo     repository.BookRepository
	l            logger.Logger
	// 单本书重算失败之后的重试次数
	maxRetries int
	// 第一次重试前等多久，之后每次翻倍
	baseBackoff time.Duration
}

func NewRecalcReadPagesBatchConsumer(client sarama.Client,
	l logger.Logger,
	intervalRepo repository.IntervalRepository,
	bookRepo repository.BookRepository) *RecalcReadPagesBatchConsumer {
	return &RecalcReadPagesBatchConsumer{
		client:       client,
		l:            l,
		intervalRepo: intervalRepo,
		bookRepo:     bookRepo,
		maxRetries:   3,
		baseBackoff:  time.Second,
	}
}

func (r *RecalcReadPagesBatchConsumer) Start() error {
	cg, err := sarama.NewConsumerGroupFromClient("recalc_read_pages", r.client)
	if err != nil {
		return err
	}
	go func() {
		err := cg.Consume(context.Background(), []string{topicRecalcEvent},
			saramax.NewBatchHandler[RecalcEvent](r.l, r.Consume))
		if err != nil {
			r.l.Error("退出了消费循环异常", logger.Error(err))
		}
	}()
	return err
}

// Consume 处理一批重算事件
// 同一批里面同一本书可能出现多次，先去重再算，纯粹是省几次查询，
// 不去重也是对的，因为重算是幂等的
func (r *RecalcReadPagesBatchConsumer) Consume(msgs []*sarama.ConsumerMessage, evts []RecalcEvent) error {
	if len(evts) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(evts))
	for _, evt := range evts {
		if _, ok := seen[evt.BookId]; ok {
			continue
		}
		seen[evt.BookId] = struct{}{}
		r.recalcWithRetry(evt.BookId)
	}
	return nil
}

// recalcWithRetry 重算一本书，失败了指数退避重试
// 重试次数用完就记日志放弃，不能卡住后面别的书
func (r *RecalcReadPagesBatchConsumer) recalcWithRetry(bookId int64) {
	backoff := r.baseBackoff
	var err error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}
		err = r.recalc(bookId)
		if err == nil {
			return
		}
		r.l.Warn("重算去重页数失败",
			logger.Int64("bookId", bookId),
			logger.Int("attempt", attempt+1),
			logger.Error(err))
	}
	r.l.Error("重算去重页数彻底失败，放弃这个任务",
		logger.Int64("bookId", bookId),
		logger.Error(err))
}

func (r *RecalcReadPagesBatchConsumer) recalc(bookId int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	ranges, err := r.intervalRepo.GetRangesByBook(ctx, bookId)
	if err != nil {
		return err
	}
	return r.bookRepo.UpdateReadPages(ctx, bookId, domain.UniquePages(ranges))
}
