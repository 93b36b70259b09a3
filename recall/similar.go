package recall

import (
	"context"

	"github.com/sayampalrecha/Movie-Recommendations-System/catalog"
	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pipeline"
	"github.com/sayampalrecha/Movie-Recommendations-System/pkg/utils"
	"github.com/sayampalrecha/Movie-Recommendations-System/similarity"
)

// SimilarRecall 是相似度召回源：取出查询电影所在的矩阵行，
// 为每个矩阵位置生成一个候选（含原始相似度分数与片名）。
//
// 注意这里不排除查询电影本身，也不排序——排除交给 filter.Self，
// 排序交给 rank.Score，各阶段职责单一。
// SimilarRecall 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type SimilarRecall struct {
	Rows    core.RowSource
	Catalog *catalog.Index
}

func (r *SimilarRecall) Name() string        { return "recall.similar" }
func (r *SimilarRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *SimilarRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *SimilarRecall) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Rows == nil || r.Catalog == nil || rctx == nil {
		return nil, nil
	}

	n := r.Rows.Len()
	if rctx.QueryIndex < 0 || rctx.QueryIndex >= n {
		return nil, core.NewIndexOutOfRange(rctx.QueryIndex, n)
	}

	row, err := r.Rows.Row(ctx, rctx.QueryIndex)
	if err != nil {
		return nil, err
	}
	if err := similarity.ValidateRow(rctx.QueryIndex, row, r.Catalog.Len()); err != nil {
		return nil, err
	}

	out := make([]*core.Item, 0, n)
	for pos, score := range row {
		title, err := r.Catalog.TitleAt(pos)
		if err != nil {
			return nil, err
		}
		it := core.NewItem(pos)
		it.Title = title
		it.Score = score
		it.PutLabel("recall_source", utils.Label{Value: "similar", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
