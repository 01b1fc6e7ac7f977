package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeRanges(t *testing.T) {
	testCases := []struct {
		name string

		ranges []PageRange

		wantRes []PageRange
	}{
		{
			name:    "空输入",
			ranges:  nil,
			wantRes: nil,
		},
		{
			name: "单个区间",
			ranges: []PageRange{
				{StartPage: 3, EndPage: 7},
			},
			wantRes: []PageRange{
				{StartPage: 3, EndPage: 7},
			},
		},
		{
			name: "互不相交",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 3},
				{StartPage: 10, EndPage: 12},
			},
			wantRes: []PageRange{
				{StartPage: 1, EndPage: 3},
				{StartPage: 10, EndPage: 12},
			},
		},
		{
			name: "部分重叠",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 10},
				{StartPage: 5, EndPage: 15},
			},
			wantRes: []PageRange{
				{StartPage: 1, EndPage: 15},
			},
		},
		{
			name: "完全包含",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 20},
				{StartPage: 5, EndPage: 10},
			},
			wantRes: []PageRange{
				{StartPage: 1, EndPage: 20},
			},
		},
		{
			name: "相邻区间也要合并",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 5},
				{StartPage: 6, EndPage: 10},
			},
			wantRes: []PageRange{
				{StartPage: 1, EndPage: 10},
			},
		},
		{
			name: "隔了一页就不合并",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 5},
				{StartPage: 7, EndPage: 10},
			},
			wantRes: []PageRange{
				{StartPage: 1, EndPage: 5},
				{StartPage: 7, EndPage: 10},
			},
		},
		{
			name: "乱序输入",
			ranges: []PageRange{
				{StartPage: 11, EndPage: 20},
				{StartPage: 1, EndPage: 5},
				{StartPage: 4, EndPage: 12},
			},
			wantRes: []PageRange{
				{StartPage: 1, EndPage: 20},
			},
		},
		{
			name: "重复提交同一个区间",
			ranges: []PageRange{
				{StartPage: 2, EndPage: 8},
				{StartPage: 2, EndPage: 8},
			},
			wantRes: []PageRange{
				{StartPage: 2, EndPage: 8},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := MergeRanges(tc.ranges)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestUniquePages(t *testing.T) {
	testCases := []struct {
		name string

		ranges []PageRange

		wantPages int64
	}{
		{
			name:      "没读过",
			ranges:    nil,
			wantPages: 0,
		},
		{
			name: "单页",
			ranges: []PageRange{
				{StartPage: 5, EndPage: 5},
			},
			wantPages: 1,
		},
		{
			name: "相邻算连续读完",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 5},
				{StartPage: 6, EndPage: 10},
			},
			wantPages: 10,
		},
		{
			name: "重叠部分只算一次",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 10},
				{StartPage: 5, EndPage: 15},
			},
			wantPages: 15,
		},
		{
			name: "多段加空洞",
			ranges: []PageRange{
				{StartPage: 1, EndPage: 3},
				{StartPage: 10, EndPage: 12},
				{StartPage: 11, EndPage: 20},
			},
			wantPages: 14,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantPages, UniquePages(tc.ranges))
		})
	}
}

// TestUniquePages_RandomAgainstNaive 随机生成区间，
// 跟逐页打标记的朴素算法对比，两边必须一致
func TestUniquePages_RandomAgainstNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := rnd.Intn(20)
		ranges := make([]PageRange, 0, n)
		for j := 0; j < n; j++ {
			start := int64(rnd.Intn(200) + 1)
			end := start + int64(rnd.Intn(50))
			ranges = append(ranges, PageRange{StartPage: start, EndPage: end})
		}
		want := naiveUniquePages(ranges)
		got := UniquePages(ranges)
		assert.Equal(t, want, got)

		// 输入顺序不影响结果
		shuffled := make([]PageRange, len(ranges))
		copy(shuffled, ranges)
		rnd.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, UniquePages(shuffled))
	}
}

func naiveUniquePages(ranges []PageRange) int64 {
	pages := make(map[int64]struct{})
	for _, r := range ranges {
		for p := r.StartPage; p <= r.EndPage; p++ {
			pages[p] = struct{}{}
		}
	}
	return int64(len(pages))
}
