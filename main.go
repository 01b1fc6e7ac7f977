package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
)

func main() {
	initViper()
	initPrometheus()

	app := InitApp()

	// 启动消费者，消费重算事件
	for _, c := range app.consumers {
		err := c.Start()
		if err != nil {
			panic(err)
		}
	}

	// 启动定时任务，预热榜单缓存
	app.cron.Start()

	// 启动 Web 服务器，监听 8081 端口
	err := app.web.Run(":8081")
	if err != nil {
		panic(err)
	}
}

func initViper() {
	viper.SetConfigFile("config/dev.yaml")
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
}

func initPrometheus() {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(":8082", nil)
		if err != nil {
			panic(err)
		}
	}()
}
