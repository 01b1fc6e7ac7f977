//go:build wireinject

package main

import (
	evtivl "booktrack/internal/events/interval"
	"booktrack/internal/repository"
	"booktrack/internal/repository/cache"
	"booktrack/internal/repository/dao"
	"booktrack/internal/service"
	"booktrack/internal/web"
	"booktrack/ioc"

	"github.com/google/wire"
)

// 第三方依赖
var thirdProvider = wire.NewSet(
	ioc.InitDB,
	ioc.InitRedis,
	ioc.InitLogger,
	ioc.InitKafka,
	ioc.NewSyncProducer,
)

var rankingServiceProvider = wire.NewSet(
	service.NewBatchRankingService,
	repository.NewCachedRankingRepository,
	ioc.InitRankingCache,
)

func InitApp() *App {
	wire.Build(
		// 最基础的第三方依赖
		thirdProvider,

		// DAO 部分
		dao.NewGORMBookDAO,
		dao.NewGORMIntervalDAO,

		// Cache 部分
		cache.NewRedisBookCache,

		// repository 部分
		repository.NewCachedBookRepository,
		repository.NewIntervalRepository,

		// events 部分
		evtivl.NewKafkaProducer,
		evtivl.NewRecalcReadPagesBatchConsumer,
		ioc.NewConsumers,

		// service 部分
		rankingServiceProvider,
		service.NewIntervalService,
		service.NewBookService,

		// cron 部分
		ioc.InitRankingWarmJob,
		ioc.InitJobs,

		// handler 部分
		web.NewIntervalHandler,
		web.NewRankingHandler,
		web.NewBookHandler,

		// gin 的中间件
		ioc.GinMiddlewares,

		// Web 服务器
		ioc.InitWebServer,

		wire.Struct(new(App), "*"),
	)

	return new(App)
}
