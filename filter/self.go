package filter

import (
	"context"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// SelfFilter 剔除查询电影本身：按矩阵位置恒等比较，而不是假设
// 自相似度排在第一位。畸形输入下（矩阵不对称、自相似度不是最大值）
// 按排序位置排除会误伤真正的最相似电影，这里的按位比较不受影响。
type SelfFilter struct{}

func (f *SelfFilter) Name() string {
	return "filter.self"
}

func (f *SelfFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	if rctx == nil {
		return false, nil
	}
	return item.Index == rctx.QueryIndex, nil
}
