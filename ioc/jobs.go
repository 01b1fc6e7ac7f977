package ioc

import (
	"time"

	"booktrack/internal/job"
	"booktrack/internal/service"
	"booktrack/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

func InitRankingWarmJob(svc service.RankingService) *job.RankingWarmJob {
	return job.NewRankingWarmJob(svc, time.Second*30)
}

func InitJobs(l logger.Logger, rankingJob *job.RankingWarmJob) *cron.Cron {
	bd := job.NewCronJobBuilder(l, prometheus.SummaryOpts{
		Namespace: "booktrack_server",
		Subsystem: "booktrack",
		Name:      "cron_job",
		Help:      "榜单预热定时任务",
	})
	expr := cron.New(cron.WithSeconds())
	_, err := expr.AddJob("@every 1m", bd.Build(rankingJob))
	if err != nil {
		panic(err)
	}
	return expr
}
