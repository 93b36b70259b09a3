package engine

import (
	"context"

	"github.com/sayampalrecha/Movie-Recommendations-System/catalog"
	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// Recommender 是面向展示层的门面：输入片名，输出推荐列表。
// 所有失败都以类型化错误返回，供调用方渲染为用户可读的提示
// （例如"没有找到推荐，换一部电影试试"）；核心层从不 panic 穿越边界。
type Recommender struct {
	idx    *catalog.Index
	engine *Engine
}

// NewRecommender 组合目录与引擎。
func NewRecommender(idx *catalog.Index, rows core.RowSource) (*Recommender, error) {
	eng, err := New(idx, rows)
	if err != nil {
		return nil, err
	}
	return &Recommender{idx: idx, engine: eng}, nil
}

// Titles 返回按字母序排序的全部片名，用于填充选择器。
func (r *Recommender) Titles() []string {
	return r.idx.Titles()
}

// Recommend 解析片名并返回 Top-K 推荐。
// 片名不存在返回 NOT_FOUND；查询结果中绝不包含查询电影本身。
func (r *Recommender) Recommend(ctx context.Context, title string, k int) ([]core.Recommendation, error) {
	index, err := r.idx.Lookup(title)
	if err != nil {
		return nil, err
	}
	return r.engine.Recommend(ctx, index, k)
}

// Engine 暴露底层引擎，供需要按行号直接查询的调用方使用。
func (r *Recommender) Engine() *Engine {
	return r.engine
}
