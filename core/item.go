package core

import "github.com/sayampalrecha/Movie-Recommendations-System/pkg/utils"

// Item 是推荐链路中的统一承载结构：候选电影的位置、片名、分数与标签。
// Labels 用于解释与策略驱动；Score 是原始相似度，用于排序决策。
type Item struct {
	Index  int
	Title  string
	Score  float64
	Meta   map[string]any
	Labels map[string]utils.Label
}

func NewItem(index int) *Item {
	return &Item{
		Index:  index,
		Score:  0,
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (it *Item) PutLabel(key string, lbl utils.Label) {
	if it.Labels == nil {
		it.Labels = make(map[string]utils.Label)
	}
	if old, ok := it.Labels[key]; ok {
		it.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	it.Labels[key] = lbl
}
