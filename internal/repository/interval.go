package repository

import (
	"context"

	"booktrack/internal/domain"
	"booktrack/internal/repository/dao"

	"github.com/ecodeclub/ekit/slice"
)

// ErrIntervalDuplicate 完全相同的区间已经存在
var ErrIntervalDuplicate = dao.ErrIntervalDuplicate

//go:generate mockgen -source=interval.go -package=repomocks -destination=mocks/interval.mock.go IntervalRepository
type IntervalRepository interface {
	Create(ctx context.Context, iv domain.ReadingInterval) error
	// GetRangesByBook 某本书的全部区间，按起始页升序
	GetRangesByBook(ctx context.Context, bookId int64) ([]domain.PageRange, error)
	// GetRangesGroupedByBook 全部区间按书分组，组内按起始页升序
	GetRangesGroupedByBook(ctx context.Context) (map[int64][]domain.PageRange, error)
}

type intervalRepository struct {
	dao dao.IntervalDAO
}

func NewIntervalRepository(dao dao.IntervalDAO) IntervalRepository {
	return &intervalRepository{
		dao: dao,
	}
}

func (r *intervalRepository) Create(ctx context.Context, iv domain.ReadingInterval) error {
	return r.dao.Insert(ctx, dao.ReadingInterval{
		Uid:       iv.Uid,
		BookId:    iv.BookId,
		StartPage: iv.StartPage,
		EndPage:   iv.EndPage,
	})
}

func (r *intervalRepository) GetRangesByBook(ctx context.Context, bookId int64) ([]domain.PageRange, error) {
	ivs, err := r.dao.GetByBookId(ctx, bookId)
	if err != nil {
		return nil, err
	}
	return slice.Map[dao.ReadingInterval, domain.PageRange](ivs,
		func(idx int, src dao.ReadingInterval) domain.PageRange {
			return domain.PageRange{
				StartPage: src.StartPage,
				EndPage:   src.EndPage,
			}
		}), nil
}

func (r *intervalRepository) GetRangesGroupedByBook(ctx context.Context) (map[int64][]domain.PageRange, error) {
	ivs, err := r.dao.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]domain.PageRange)
	for _, iv := range ivs {
		res[iv.BookId] = append(res[iv.BookId], domain.PageRange{
			StartPage: iv.StartPage,
			EndPage:   iv.EndPage,
		})
	}
	return res, nil
}
