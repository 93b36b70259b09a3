package rerank

import (
	"context"
	"strconv"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pipeline"
	"github.com/sayampalrecha/Movie-Recommendations-System/pkg/utils"
)

// PercentNode 是后处理节点：把原始相似度（∈ [0,1]）转为双端钳制的
// 百分比分数，并打上 score_pct 标签供展示层直接渲染进度条。
// 放在 Top-N 截断之后，只处理最终要返回的候选。
type PercentNode struct{}

func (n *PercentNode) Name() string {
	return "postprocess.percent"
}

func (n *PercentNode) Kind() pipeline.Kind {
	return pipeline.KindPostProcess
}

func (n *PercentNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	for _, it := range items {
		if it == nil {
			continue
		}
		it.Score = core.ClampScore(it.Score)
		it.PutLabel("score_pct", utils.Label{
			Value:  strconv.FormatFloat(it.Score, 'f', 1, 64),
			Source: "postprocess",
		})
	}
	return items, nil
}
