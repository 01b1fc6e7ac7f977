package domain

// Book 书籍
// 页数由外部的建书流程维护，聚合这边只读
type Book struct {
	Id    int64
	Title string
	// TotalPages 这本书一共多少页
	TotalPages int64
	// ReadPages 冗余字段，异步任务算好之后回写
	// 仅用于展示，榜单的实时路径不依赖它
	ReadPages int64
}

// CacheStats 榜单缓存的运行参数，给运维接口看的
type CacheStats struct {
	Enabled bool `json:"enabled"`
	// TTL 毫秒
	TTL            int64  `json:"ttl"`
	CacheKeyPrefix string `json:"cacheKeyPrefix"`
}

// TopBook 榜单里面的一项
type TopBook struct {
	BookId     int64  `json:"bookId"`
	Title      string `json:"title"`
	TotalPages int64  `json:"totalPages"`
	// UniquePages 全体用户加起来读过的去重页数
	UniquePages int64 `json:"uniquePages"`
}
