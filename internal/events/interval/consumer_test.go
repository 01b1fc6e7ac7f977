package interval

import (
	"errors"
	"testing"
	"time"

	"booktrack/internal/domain"
	repomocks "booktrack/internal/repository/mocks"
	"booktrack/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRecalcReadPagesBatchConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) (*repomocks.MockIntervalRepository,
			*repomocks.MockBookRepository)

		evts []RecalcEvent

		wantErr error
	}{
		{
			name: "空批次",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIntervalRepository,
				*repomocks.MockBookRepository) {
				return repomocks.NewMockIntervalRepository(ctrl),
					repomocks.NewMockBookRepository(ctrl)
			},
			evts:    nil,
			wantErr: nil,
		},
		{
			name: "同一本书在一批里面只算一次",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIntervalRepository,
				*repomocks.MockBookRepository) {
				intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
				intervalRepo.EXPECT().GetRangesByBook(gomock.Any(), int64(1)).
					Return([]domain.PageRange{
						{StartPage: 1, EndPage: 10},
						{StartPage: 5, EndPage: 20},
					}, nil)
				intervalRepo.EXPECT().GetRangesByBook(gomock.Any(), int64(2)).
					Return([]domain.PageRange{
						{StartPage: 1, EndPage: 5},
					}, nil)
				bookRepo := repomocks.NewMockBookRepository(ctrl)
				bookRepo.EXPECT().UpdateReadPages(gomock.Any(), int64(1), int64(20)).
					Return(nil)
				bookRepo.EXPECT().UpdateReadPages(gomock.Any(), int64(2), int64(5)).
					Return(nil)
				return intervalRepo, bookRepo
			},
			evts: []RecalcEvent{
				{BookId: 1},
				{BookId: 2},
				{BookId: 1},
			},
			wantErr: nil,
		},
		{
			name: "失败重试之后成功",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIntervalRepository,
				*repomocks.MockBookRepository) {
				intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
				intervalRepo.EXPECT().GetRangesByBook(gomock.Any(), int64(1)).
					Return(nil, errors.New("db 崩了"))
				intervalRepo.EXPECT().GetRangesByBook(gomock.Any(), int64(1)).
					Return([]domain.PageRange{
						{StartPage: 1, EndPage: 10},
					}, nil)
				bookRepo := repomocks.NewMockBookRepository(ctrl)
				bookRepo.EXPECT().UpdateReadPages(gomock.Any(), int64(1), int64(10)).
					Return(nil)
				return intervalRepo, bookRepo
			},
			evts: []RecalcEvent{
				{BookId: 1},
			},
			wantErr: nil,
		},
		{
			name: "重试耗尽放弃，不影响后面的书",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIntervalRepository,
				*repomocks.MockBookRepository) {
				intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
				// 首次 + 2 次重试全部失败
				intervalRepo.EXPECT().GetRangesByBook(gomock.Any(), int64(1)).
					Return(nil, errors.New("db 崩了")).Times(3)
				intervalRepo.EXPECT().GetRangesByBook(gomock.Any(), int64(2)).
					Return([]domain.PageRange{
						{StartPage: 1, EndPage: 3},
					}, nil)
				bookRepo := repomocks.NewMockBookRepository(ctrl)
				bookRepo.EXPECT().UpdateReadPages(gomock.Any(), int64(2), int64(3)).
					Return(nil)
				return intervalRepo, bookRepo
			},
			evts: []RecalcEvent{
				{BookId: 1},
				{BookId: 2},
			},
			wantErr: nil,
		},
		{
			name: "回写冗余字段失败也会重试",
			mock: func(ctrl *gomock.Controller) (*repomocks.MockIntervalRepository,
				*repomocks.MockBookRepository) {
				intervalRepo := repomocks.NewMockIntervalRepository(ctrl)
				intervalRepo.EXPECT().GetRangesByBook(gomock.Any(), int64(1)).
					Return([]domain.PageRange{
						{StartPage: 1, EndPage: 10},
					}, nil).Times(2)
				bookRepo := repomocks.NewMockBookRepository(ctrl)
				bookRepo.EXPECT().UpdateReadPages(gomock.Any(), int64(1), int64(10)).
					Return(errors.New("db 崩了"))
				bookRepo.EXPECT().UpdateReadPages(gomock.Any(), int64(1), int64(10)).
					Return(nil)
				return intervalRepo, bookRepo
			},
			evts: []RecalcEvent{
				{BookId: 1},
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			intervalRepo, bookRepo := tc.mock(ctrl)
			c := &RecalcReadPagesBatchConsumer{
				intervalRepo: intervalRepo,
				bookRepo:     bookRepo,
				l:            logger.NewNopLogger(),
				maxRetries:   2,
				// 测试里面不能真的睡一秒
				baseBackoff: time.Millisecond,
			}
			err := c.Consume(nil, tc.evts)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
