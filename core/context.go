package core

import "github.com/sayampalrecha/Movie-Recommendations-System/pkg/utils"

// DefaultTopK 是未指定 K 时的默认返回条数（原始产品行为：Top 5）。
const DefaultTopK = 5

// RecommendContext 承载一次相似度查询的上下文，贯穿整个 Pipeline 透传。
// 核心操作是只读的：Pipeline 不会修改目录或矩阵，只消费这些字段。
type RecommendContext struct {
	// QueryTitle 用户选中的片名（展示层传入）
	QueryTitle string

	// QueryIndex 解析后的矩阵行号；由 catalog.Index.Lookup 得到
	QueryIndex int

	// K 期望返回的推荐条数；<= 0 时使用 DefaultTopK
	K int

	// Labels 是请求级标签，可驱动 Pipeline 行为（explain / 策略）
	Labels map[string]utils.Label

	// Params 请求级上下文参数（如 min_score、场景开关等）
	Params map[string]any
}

// TopK 返回规范化后的 K。
func (rctx *RecommendContext) TopK() int {
	if rctx == nil || rctx.K <= 0 {
		return DefaultTopK
	}
	return rctx.K
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
