package logger

// Logger 是整个项目使用的日志抽象
// 底层实现可以是 zap，也可以在测试里换成 NopLogger
type Logger interface {
	Debug(msg string, args ...Field)
	Info(msg string, args ...Field)
	Warn(msg string, args ...Field)
	Error(msg string, args ...Field)
}

// Field 日志字段，Key-Value 结构
type Field struct {
	Key   string
	Value any
}

func String(key, val string) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Int64(key string, val int64) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Int(key string, val int) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Any(key string, val any) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

// Error 统一用 error 这个 key，方便日志平台检索
func Error(err error) Field {
	return Field{
		Key:   "error",
		Value: err,
	}
}
