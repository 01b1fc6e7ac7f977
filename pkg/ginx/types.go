package ginx

// Result API 响应的统一格式
type Result struct {
	Code int    `json:"code"` // 业务状态码
	Msg  string `json:"msg"`  // 简短的错误描述或者成功信息
	Data any    `json:"data"` // 响应的数据，可以是任意类型
}
