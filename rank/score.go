// Package rank 提供排序 Node。本系统的分数是预计算的相似度，
// 排序节点只负责确定性的降序排列，不做模型打分。
package rank

import (
	"context"
	"sort"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pipeline"
)

// ScoreNode 按 Score 降序排序；同分按矩阵位置升序。
// 平分的确定性顺序是刻意设计：无序的平分会让输出在不同平台间不可复现。
type ScoreNode struct{}

func (n *ScoreNode) Name() string {
	return "rank.score"
}

func (n *ScoreNode) Kind() pipeline.Kind {
	return pipeline.KindRank
}

func (n *ScoreNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) < 2 {
		return items, nil
	}

	out := make([]*core.Item, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Index < out[j].Index
	})
	return out, nil
}
