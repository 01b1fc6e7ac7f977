package service

import (
	"context"
	"errors"
	"testing"

	"booktrack/internal/domain"
	"booktrack/internal/repository"
	repomocks "booktrack/internal/repository/mocks"
	"booktrack/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBatchRankingService_TopBooks(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) (repository.BookRepository,
			repository.IntervalRepository,
			repository.RankingRepository)

		limit int

		wantRes []domain.TopBook
		wantErr error
	}{
		{
			name: "limit 太小",
			mock: func(ctrl *gomock.Controller) (repository.BookRepository,
				repository.IntervalRepository,
				repository.RankingRepository) {
				return repomocks.NewMockBookRepository(ctrl),
					repomocks.NewMockIntervalRepository(ctrl),
					repomocks.NewMockRankingRepository(ctrl)
			},
			limit:   0,
			wantErr: ErrInvalidLimit,
		},
		{
			name: "limit 太大",
			mock: func(ctrl *gomock.Controller) (repository.BookRepository,
				repository.IntervalRepository,
				repository.RankingRepository) {
				return repomocks.NewMockBookRepository(ctrl),
					repomocks.NewMockIntervalRepository(ctrl),
					repomocks.NewMockRankingRepository(ctrl)
			},
			limit:   101,
			wantErr: ErrInvalidLimit,
		},
		{
			name: "缓存命中直接返回",
			mock: func(ctrl *gomock.Controller) (repository.BookRepository,
				repository.IntervalRepository,
				repository.RankingRepository) {
				rankingRepo := repomocks.NewMockRankingRepository(ctrl)
				rankingRepo.EXPECT().GetTopBooks(gomock.Any(), 5).
					Return([]domain.TopBook{
						{BookId: 1, Title: "Bravo", TotalPages: 300, UniquePages: 20},
					}, nil)
				// 命中缓存就不该碰数据库
				return repomocks.NewMockBookRepository(ctrl),
					repomocks.NewMockIntervalRepository(ctrl),
					rankingRepo
			},
			limit: 5,
			wantRes: []domain.TopBook{
				{BookId: 1, Title: "Bravo", TotalPages: 300, UniquePages: 20},
			},
			wantErr: nil,
		},
		{
			name: "缓存未命中实时计算并回填",
			mock: func(ctrl *gomock.Controller) (repository.BookRepository,
				repository.IntervalRepository,
				repository.RankingRepository) {
				bookRepo := repomocks.NewMockBookRepository(ctrl)
				bookRepo.EXPECT().ListAll(gomock.Any()).
					Return([]domain.Book{
						{Id: 1, Title: "Bravo", TotalPages: 300},
						{Id: 2, Title: "Alpha", TotalPages: 200},
						{Id: 3, Title: "Zulu", TotalPages: 100},
					}, nil)
				intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
				intervalRepo.EXPECT().GetRangesGroupedByBook(gomock.Any()).
					Return(map[int64][]domain.PageRange{
						// 重叠之后都是 20 页
						1: {{StartPage: 1, EndPage: 10}, {StartPage: 5, EndPage: 20}},
						2: {{StartPage: 1, EndPage: 10}, {StartPage: 11, EndPage: 20}},
						3: {{StartPage: 1, EndPage: 5}},
					}, nil)
				rankingRepo := repomocks.NewMockRankingRepository(ctrl)
				rankingRepo.EXPECT().GetTopBooks(gomock.Any(), 2).
					Return(nil, repository.ErrRankingNotCached)
				rankingRepo.EXPECT().ReplaceTopBooks(gomock.Any(), 2,
					[]domain.TopBook{
						{BookId: 2, Title: "Alpha", TotalPages: 200, UniquePages: 20},
						{BookId: 1, Title: "Bravo", TotalPages: 300, UniquePages: 20},
					}).Return(nil)
				return bookRepo, intervalRepo, rankingRepo
			},
			limit: 2,
			// 页数一样的按标题字典序排，Alpha 排在 Bravo 前面
			wantRes: []domain.TopBook{
				{BookId: 2, Title: "Alpha", TotalPages: 200, UniquePages: 20},
				{BookId: 1, Title: "Bravo", TotalPages: 300, UniquePages: 20},
			},
			wantErr: nil,
		},
		{
			name: "缓存读取出错降级实时计算",
			mock: func(ctrl *gomock.Controller) (repository.BookRepository,
				repository.IntervalRepository,
				repository.RankingRepository) {
				bookRepo := repomocks.NewMockBookRepository(ctrl)
				bookRepo.EXPECT().ListAll(gomock.Any()).
					Return([]domain.Book{
						{Id: 3, Title: "Zulu", TotalPages: 100},
					}, nil)
				intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
				intervalRepo.EXPECT().GetRangesGroupedByBook(gomock.Any()).
					Return(map[int64][]domain.PageRange{
						3: {{StartPage: 1, EndPage: 5}},
					}, nil)
				rankingRepo := repomocks.NewMockRankingRepository(ctrl)
				rankingRepo.EXPECT().GetTopBooks(gomock.Any(), 5).
					Return(nil, errors.New("redis 崩了"))
				rankingRepo.EXPECT().ReplaceTopBooks(gomock.Any(), 5,
					gomock.Any()).Return(nil)
				return bookRepo, intervalRepo, rankingRepo
			},
			limit: 5,
			wantRes: []domain.TopBook{
				{BookId: 3, Title: "Zulu", TotalPages: 100, UniquePages: 5},
			},
			wantErr: nil,
		},
		{
			name: "回填缓存失败不影响查询结果",
			mock: func(ctrl *gomock.Controller) (repository.BookRepository,
				repository.IntervalRepository,
				repository.RankingRepository) {
				bookRepo := repomocks.NewMockBookRepository(ctrl)
				bookRepo.EXPECT().ListAll(gomock.Any()).
					Return([]domain.Book{
						// 没人读过的书页数算 0
						{Id: 4, Title: "Mike", TotalPages: 50},
					}, nil)
				intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
				intervalRepo.EXPECT().GetRangesGroupedByBook(gomock.Any()).
					Return(map[int64][]domain.PageRange{}, nil)
				rankingRepo := repomocks.NewMockRankingRepository(ctrl)
				rankingRepo.EXPECT().GetTopBooks(gomock.Any(), 5).
					Return(nil, repository.ErrRankingNotCached)
				rankingRepo.EXPECT().ReplaceTopBooks(gomock.Any(), 5,
					gomock.Any()).Return(errors.New("redis 崩了"))
				return bookRepo, intervalRepo, rankingRepo
			},
			limit: 5,
			wantRes: []domain.TopBook{
				{BookId: 4, Title: "Mike", TotalPages: 50, UniquePages: 0},
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			bookRepo, intervalRepo, rankingRepo := tc.mock(ctrl)
			svc := NewBatchRankingService(bookRepo, intervalRepo,
				rankingRepo, logger.NewNopLogger())
			res, err := svc.TopBooks(context.Background(), tc.limit)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestBatchRankingService_WarmUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookRepo := repomocks.NewMockBookRepository(ctrl)
	bookRepo.EXPECT().ListAll(gomock.Any()).
		Return([]domain.Book{
			{Id: 1, Title: "Bravo", TotalPages: 300},
			{Id: 2, Title: "Alpha", TotalPages: 200},
		}, nil)
	intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
	intervalRepo.EXPECT().GetRangesGroupedByBook(gomock.Any()).
		Return(map[int64][]domain.PageRange{
			1: {{StartPage: 1, EndPage: 30}},
			2: {{StartPage: 1, EndPage: 10}},
		}, nil)

	top := []domain.TopBook{
		{BookId: 1, Title: "Bravo", TotalPages: 300, UniquePages: 30},
		{BookId: 2, Title: "Alpha", TotalPages: 200, UniquePages: 10},
	}
	rankingRepo := repomocks.NewMockRankingRepository(ctrl)
	// 只算一次，各个 limit 按需截取，这里只有两本书所以都一样
	rankingRepo.EXPECT().ReplaceTopBooks(gomock.Any(), 5, top).Return(nil)
	rankingRepo.EXPECT().ReplaceTopBooks(gomock.Any(), 10, top).Return(nil)
	rankingRepo.EXPECT().ReplaceTopBooks(gomock.Any(), 100, top).Return(nil)

	svc := NewBatchRankingService(bookRepo, intervalRepo,
		rankingRepo, logger.NewNopLogger())
	err := svc.WarmUp(context.Background())
	assert.NoError(t, err)
}

func TestBatchRankingService_InvalidateCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rankingRepo := repomocks.NewMockRankingRepository(ctrl)
	// 删除失败只记日志，调用方看不到错误
	rankingRepo.EXPECT().InvalidateAll(gomock.Any()).
		Return(errors.New("redis 崩了"))

	svc := NewBatchRankingService(repomocks.NewMockBookRepository(ctrl),
		repomocks.NewMockIntervalRepository(ctrl),
		rankingRepo, logger.NewNopLogger())
	svc.InvalidateCache(context.Background())
}
