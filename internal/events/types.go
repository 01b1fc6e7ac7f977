package events

// Consumer 所有消费者的启动抽象，main 里面统一拉起
type Consumer interface {
	Start() error
}
