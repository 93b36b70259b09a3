package filter

import (
	"context"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pkg/dsl"
)

// ExprFilter 是表达式驱动的过滤器：用 CEL 表达式描述"保留条件"，
// 表达式为 false 的候选被剔除。
//
// 示例：
//   - `item.score > 0.05` 丢弃近零相似度的候选
//   - `label.recall_source.contains("similar")` 只保留相似度召回的结果
//
// 表达式在构造时编译一次，线程安全。
type ExprFilter struct {
	expr string
	prg  *dsl.Program
}

// NewExprFilter 编译保留条件表达式。
func NewExprFilter(expr string) (*ExprFilter, error) {
	prg, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{expr: expr, prg: prg}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	keep, err := f.prg.Eval(item, rctx)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
