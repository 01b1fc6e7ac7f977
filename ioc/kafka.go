package ioc

import (
	"fmt"

	"booktrack/internal/events"
	evtivl "booktrack/internal/events/interval"

	"github.com/IBM/sarama"
	"github.com/spf13/viper"
)

func InitKafka() sarama.Client {
	type Config struct {
		Addrs []string `yaml:"addrs"`
	}
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	c := Config{
		Addrs: []string{"localhost:9094"},
	}
	err := viper.UnmarshalKey("kafka", &c)
	if err != nil {
		panic(fmt.Errorf("初始化配置失败 %v, 原因 %w", c, err))
	}
	client, err := sarama.NewClient(c.Addrs, saramaCfg)
	if err != nil {
		panic(err)
	}
	return client
}

func NewSyncProducer(client sarama.Client) sarama.SyncProducer {
	res, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		panic(err)
	}
	return res
}

// NewConsumers 所有的消费者在这里注册，main 里面统一启动
func NewConsumers(recalc *evtivl.RecalcReadPagesBatchConsumer) []events.Consumer {
	return []events.Consumer{
		recalc,
	}
}
