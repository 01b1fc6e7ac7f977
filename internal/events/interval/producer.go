package interval

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
)

// topicRecalcEvent 阅读区间写入之后的重算事件都发到这个 topic
const topicRecalcEvent = "interval_recalc_event"

//go:generate mockgen -source=producer.go -package=evtmocks -destination=mocks/producer.mock.go Producer
type Producer interface {
	// ProduceRecalcEvent 发送一条"这本书需要重算去重页数"的事件
	ProduceRecalcEvent(ctx context.Context, evt RecalcEvent) error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
}

func NewKafkaProducer(pc sarama.SyncProducer) Producer {
	return &KafkaProducer{
		producer: pc,
	}
}

func (k *KafkaProducer) ProduceRecalcEvent(ctx context.Context, evt RecalcEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topicRecalcEvent,
		Value: sarama.ByteEncoder(data),
	})
	return err
}

// RecalcEvent 重算事件，只带 BookId
// 投递语义是 at-least-once，重算本身是幂等的，所以不用去重
type RecalcEvent struct {
	BookId int64
}
