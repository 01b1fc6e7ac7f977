package repository

import (
	"context"

	"booktrack/internal/domain"
	"booktrack/internal/repository/cache"
	"booktrack/internal/repository/dao"
	"booktrack/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
)

// ErrBookNotFound 书不存在
var ErrBookNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=book.go -package=repomocks -destination=mocks/book.mock.go BookRepository
type BookRepository interface {
	Create(ctx context.Context, b domain.Book) (int64, error)
	Update(ctx context.Context, b domain.Book) error
	FindById(ctx context.Context, id int64) (domain.Book, error)
	ListAll(ctx context.Context) ([]domain.Book, error)
	// UpdateReadPages 回写冗余的去重阅读页数
	UpdateReadPages(ctx context.Context, id int64, readPages int64) error
}

type CachedBookRepository struct {
	dao   dao.BookDAO
	cache cache.BookCache
	l     logger.Logger
}

func NewCachedBookRepository(dao dao.BookDAO, cache cache.BookCache, l logger.Logger) BookRepository {
	return &CachedBookRepository{
		dao:   dao,
		cache: cache,
		l:     l,
	}
}

func (c *CachedBookRepository) Create(ctx context.Context, b domain.Book) (int64, error) {
	return c.dao.Insert(ctx, c.toEntity(b))
}

func (c *CachedBookRepository) Update(ctx context.Context, b domain.Book) error {
	err := c.dao.UpdateById(ctx, c.toEntity(b))
	if err != nil {
		return err
	}
	// 数据变了就删缓存，下次读取的时候回填
	err = c.cache.Del(ctx, b.Id)
	if err != nil {
		c.l.Error("删除书籍缓存失败",
			logger.Int64("bookId", b.Id),
			logger.Error(err))
	}
	return nil
}

func (c *CachedBookRepository) FindById(ctx context.Context, id int64) (domain.Book, error) {
	b, err := c.cache.Get(ctx, id)
	if err == nil {
		return b, nil
	}
	// 缓存没有或者 Redis 出错都落到数据库上
	// 这里要注意防范缓存崩溃之后数据库被打爆的问题
	be, err := c.dao.FindById(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	b = c.toDomain(be)
	err = c.cache.Set(ctx, b)
	if err != nil {
		c.l.Error("回填书籍缓存失败",
			logger.Int64("bookId", id),
			logger.Error(err))
	}
	return b, nil
}

func (c *CachedBookRepository) ListAll(ctx context.Context) ([]domain.Book, error) {
	bs, err := c.dao.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map[dao.Book, domain.Book](bs, func(idx int, src dao.Book) domain.Book {
		return c.toDomain(src)
	}), nil
}

func (c *CachedBookRepository) UpdateReadPages(ctx context.Context, id int64, readPages int64) error {
	err := c.dao.UpdateReadPages(ctx, id, readPages)
	if err != nil {
		return err
	}
	err = c.cache.Del(ctx, id)
	if err != nil {
		c.l.Error("删除书籍缓存失败",
			logger.Int64("bookId", id),
			logger.Error(err))
	}
	return nil
}

func (c *CachedBookRepository) toDomain(b dao.Book) domain.Book {
	return domain.Book{
		Id:         b.Id,
		Title:      b.Title,
		TotalPages: b.TotalPages,
		ReadPages:  b.ReadPages,
	}
}

func (c *CachedBookRepository) toEntity(b domain.Book) dao.Book {
	return dao.Book{
		Id:         b.Id,
		Title:      b.Title,
		TotalPages: b.TotalPages,
		ReadPages:  b.ReadPages,
	}
}
