package service

import (
	"context"
	"errors"

	"booktrack/internal/domain"
	"booktrack/internal/repository"
)

// ErrInvalidTotalPages 总页数必须是正数
var ErrInvalidTotalPages = errors.New("总页数不合法")

// BookService 建书和改书是外部协作方的事情，
// 聚合这边只依赖书的存在性和总页数，这里保留一个薄薄的入口
//
//go:generate mockgen -source=book.go -package=svcmocks -destination=mocks/book.mock.go BookService
type BookService interface {
	Create(ctx context.Context, b domain.Book) (int64, error)
	Update(ctx context.Context, b domain.Book) error
	FindById(ctx context.Context, id int64) (domain.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{
		repo: repo,
	}
}

func (svc *bookService) Create(ctx context.Context, b domain.Book) (int64, error) {
	if b.TotalPages < 1 {
		return 0, ErrInvalidTotalPages
	}
	return svc.repo.Create(ctx, b)
}

func (svc *bookService) Update(ctx context.Context, b domain.Book) error {
	if b.TotalPages < 0 {
		// 0 表示这次不改总页数，负数肯定是错的
		return ErrInvalidTotalPages
	}
	_, err := svc.repo.FindById(ctx, b.Id)
	if err != nil {
		return err
	}
	return svc.repo.Update(ctx, b)
}

func (svc *bookService) FindById(ctx context.Context, id int64) (domain.Book, error) {
	return svc.repo.FindById(ctx, id)
}
