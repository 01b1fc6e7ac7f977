package domain

import "sort"

// ReadingInterval 一次阅读记录，左右都是闭区间
// 插入之后不可变，合并只发生在读取的时候，不会回头改已有的行
type ReadingInterval struct {
	Id        int64
	Uid       int64
	BookId    int64
	StartPage int64
	EndPage   int64
}

// BatchResult 批量提交的结果
// 单条失败不影响别的条目，所以要把每条的错误带回去
type BatchResult struct {
	SuccessCount int          `json:"successCount"`
	FailedCount  int          `json:"failedCount"`
	Errors       []BatchError `json:"errors"`
}

// BatchError 批量提交里面单条的失败详情
type BatchError struct {
	// Index 在这一批里面的下标
	Index  int    `json:"index"`
	BookId int64  `json:"bookId"`
	Msg    string `json:"msg"`
}

// PageRange 一段连续的页码，[StartPage, EndPage] 闭区间
type PageRange struct {
	StartPage int64
	EndPage   int64
}

// Pages 这一段覆盖了多少页
func (p PageRange) Pages() int64 {
	return p.EndPage - p.StartPage + 1
}

// MergeRanges 把可能重叠的区间合并成最少的不重叠区间
// 相邻的区间也会合并：[1,5] 和 [6,10] 合成 [1,10]，
// 因为从读者角度这就是连续读完了 10 页
func MergeRanges(ranges []PageRange) []PageRange {
	if len(ranges) == 0 {
		return nil
	}
	// 排序要稳定，保证同一批输入不管什么顺序进来结果都一样
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].StartPage < ranges[j].StartPage
	})
	res := make([]PageRange, 0, len(ranges))
	cur := ranges[0]
	for _, r := range ranges[1:] {
		if r.StartPage <= cur.EndPage+1 {
			// 重叠或者相邻，扩展当前区间
			if r.EndPage > cur.EndPage {
				cur.EndPage = r.EndPage
			}
			continue
		}
		res = append(res, cur)
		cur = r
	}
	return append(res, cur)
}

// UniquePages 合并后去重的总页数
func UniquePages(ranges []PageRange) int64 {
	var sum int64
	for _, r := range MergeRanges(ranges) {
		sum += r.Pages()
	}
	return sum
}
