package service

import (
	"context"
	"testing"

	"booktrack/internal/domain"
	"booktrack/internal/repository"
	repomocks "booktrack/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBookService_Create(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) repository.BookRepository

		book domain.Book

		wantId  int64
		wantErr error
	}{
		{
			name: "建书成功",
			mock: func(ctrl *gomock.Controller) repository.BookRepository {
				repo := repomocks.NewMockBookRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Book{
					Title:      "Go 语言设计与实现",
					TotalPages: 500,
				}).Return(int64(1), nil)
				return repo
			},
			book: domain.Book{
				Title:      "Go 语言设计与实现",
				TotalPages: 500,
			},
			wantId:  1,
			wantErr: nil,
		},
		{
			name: "总页数不合法",
			mock: func(ctrl *gomock.Controller) repository.BookRepository {
				return repomocks.NewMockBookRepository(ctrl)
			},
			book: domain.Book{
				Title:      "空书",
				TotalPages: 0,
			},
			wantErr: ErrInvalidTotalPages,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewBookService(tc.mock(ctrl))
			id, err := svc.Create(context.Background(), tc.book)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestBookService_Update(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) repository.BookRepository

		book domain.Book

		wantErr error
	}{
		{
			name: "改书成功",
			mock: func(ctrl *gomock.Controller) repository.BookRepository {
				repo := repomocks.NewMockBookRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Book{Id: 1, TotalPages: 500}, nil)
				repo.EXPECT().Update(gomock.Any(), domain.Book{
					Id:         1,
					Title:      "新标题",
					TotalPages: 600,
				}).Return(nil)
				return repo
			},
			book: domain.Book{
				Id:         1,
				Title:      "新标题",
				TotalPages: 600,
			},
			wantErr: nil,
		},
		{
			name: "书不存在",
			mock: func(ctrl *gomock.Controller) repository.BookRepository {
				repo := repomocks.NewMockBookRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(99)).
					Return(domain.Book{}, repository.ErrBookNotFound)
				return repo
			},
			book: domain.Book{
				Id:         99,
				TotalPages: 600,
			},
			wantErr: repository.ErrBookNotFound,
		},
		{
			name: "总页数是负数",
			mock: func(ctrl *gomock.Controller) repository.BookRepository {
				return repomocks.NewMockBookRepository(ctrl)
			},
			book: domain.Book{
				Id:         1,
				TotalPages: -1,
			},
			wantErr: ErrInvalidTotalPages,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewBookService(tc.mock(ctrl))
			err := svc.Update(context.Background(), tc.book)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
