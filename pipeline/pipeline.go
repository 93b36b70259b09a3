package pipeline

import (
	"context"
	"fmt"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// Pipeline 把推荐逻辑拆成可组合的 Node 链。
// 典型链路：相似度召回 → 自身排除 → 排序 → Top-K 截断 → 百分比后处理。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			// 带上出错节点名；领域错误检查（core.IsXXX）沿包装链依然有效
			return nil, fmt.Errorf("node %s: %w", node.Name(), err)
		}
		cur = next
	}
	return cur, nil
}
