package job

import (
	"context"
	"time"

	"booktrack/internal/service"
)

// RankingWarmJob 定时预热榜单缓存
// 把常用 limit 的榜单提前算好，读请求大部分时候直接命中缓存
type RankingWarmJob struct {
	svc     service.RankingService
	timeout time.Duration
}

func NewRankingWarmJob(svc service.RankingService, timeout time.Duration) *RankingWarmJob {
	return &RankingWarmJob{
		svc:     svc,
		timeout: timeout,
	}
}

func (r *RankingWarmJob) Name() string {
	return "ranking_warm"
}

func (r *RankingWarmJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.svc.WarmUp(ctx)
}
