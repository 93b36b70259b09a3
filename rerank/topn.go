package rerank

import (
	"context"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在排序后截取前 N 个候选。
// N 未设置时使用请求里的 K（即 rctx.TopK()）。
//
// 候选不足 N 时返回实际数量，不补齐——这是接口约定的一部分，
// 调用方据此渲染"只找到 x 部相似电影"。
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rank.ScoreNode{},       // 排序
//	        &rerank.TopNNode{N: 5},  // 截取 Top 5
//	    },
//	}
type TopNNode struct {
	// N 要保留的候选数量（Top N）
	// 如果 N <= 0，使用 rctx.TopK()
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	limit := n.N
	if limit <= 0 {
		limit = rctx.TopK()
	}

	if len(items) <= limit {
		return items, nil
	}
	return items[:limit], nil
}
