package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"booktrack/internal/domain"
	"booktrack/internal/service"
	svcmocks "booktrack/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRankingHandler_TopBooks(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) service.RankingService

		url string

		wantResCode int
		wantMsg     string
		wantData    []domain.TopBook
	}{
		{
			name: "不带 limit 用默认值 5",
			mock: func(ctrl *gomock.Controller) service.RankingService {
				svc := svcmocks.NewMockRankingService(ctrl)
				svc.EXPECT().TopBooks(gomock.Any(), 5).
					Return([]domain.TopBook{
						{BookId: 1, Title: "Bravo", TotalPages: 300, UniquePages: 20},
					}, nil)
				return svc
			},
			url:         "/books/top",
			wantResCode: 0,
			wantMsg:     "OK",
			wantData: []domain.TopBook{
				{BookId: 1, Title: "Bravo", TotalPages: 300, UniquePages: 20},
			},
		},
		{
			name: "指定 limit",
			mock: func(ctrl *gomock.Controller) service.RankingService {
				svc := svcmocks.NewMockRankingService(ctrl)
				svc.EXPECT().TopBooks(gomock.Any(), 10).
					Return([]domain.TopBook{}, nil)
				return svc
			},
			url:         "/books/top?limit=10",
			wantResCode: 0,
			wantMsg:     "OK",
			wantData:    []domain.TopBook{},
		},
		{
			name: "limit 不是数字",
			mock: func(ctrl *gomock.Controller) service.RankingService {
				return svcmocks.NewMockRankingService(ctrl)
			},
			url:         "/books/top?limit=abc",
			wantResCode: 4,
			wantMsg:     "limit 不是合法的数字",
		},
		{
			name: "limit 超出范围",
			mock: func(ctrl *gomock.Controller) service.RankingService {
				svc := svcmocks.NewMockRankingService(ctrl)
				svc.EXPECT().TopBooks(gomock.Any(), 101).
					Return(nil, service.ErrInvalidLimit)
				return svc
			},
			url:         "/books/top?limit=101",
			wantResCode: 4,
			wantMsg:     "limit 必须在 1 到 100 之间",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			h := NewRankingHandler(tc.mock(ctrl))
			server := gin.Default()
			h.RegisterRoutes(server)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			assert.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
			var res struct {
				Code int              `json:"code"`
				Msg  string           `json:"msg"`
				Data []domain.TopBook `json:"data"`
			}
			err = json.NewDecoder(recorder.Body).Decode(&res)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantResCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestRankingHandler_CacheStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := svcmocks.NewMockRankingService(ctrl)
	svc.EXPECT().CacheStats().Return(domain.CacheStats{
		Enabled:        true,
		TTL:            180000,
		CacheKeyPrefix: "top_books",
	})

	h := NewRankingHandler(svc)
	server := gin.Default()
	h.RegisterRoutes(server)

	req, err := http.NewRequest(http.MethodGet, "/books/cache/stats", nil)
	assert.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var res struct {
		Code int               `json:"code"`
		Msg  string            `json:"msg"`
		Data domain.CacheStats `json:"data"`
	}
	err = json.NewDecoder(recorder.Body).Decode(&res)
	assert.NoError(t, err)
	assert.Equal(t, "OK", res.Msg)
	assert.Equal(t, domain.CacheStats{
		Enabled:        true,
		TTL:            180000,
		CacheKeyPrefix: "top_books",
	}, res.Data)
}

func TestRankingHandler_ClearCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := svcmocks.NewMockRankingService(ctrl)
	// 清理失败对外也是成功，handler 不需要感知
	svc.EXPECT().InvalidateCache(gomock.Any())

	h := NewRankingHandler(svc)
	server := gin.Default()
	h.RegisterRoutes(server)

	req, err := http.NewRequest(http.MethodGet, "/books/cache/clear", nil)
	assert.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var res struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	err = json.NewDecoder(recorder.Body).Decode(&res)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "OK", res.Msg)
}
