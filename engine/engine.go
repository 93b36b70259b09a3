// Package engine 实现相似度查找与排名：给定一部电影的矩阵行号，
// 产出 Top-K 最相似的电影及其百分比分数。
package engine

import (
	"context"
	"sort"

	"github.com/sayampalrecha/Movie-Recommendations-System/catalog"
	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/similarity"
)

// Engine 是相似度排名引擎。纯函数式：不修改目录和矩阵，
// 可被多个 goroutine 无锁并发调用。
type Engine struct {
	catalog *catalog.Index
	rows    core.RowSource
}

// New 构建引擎。目录与矩阵的尺寸必须一致，不一致是上游数据完整性
// 问题，在这里直接拒绝而不是等到查询时才暴露。
func New(idx *catalog.Index, rows core.RowSource) (*Engine, error) {
	if idx == nil || rows == nil {
		return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
			"engine: nil catalog or row source")
	}
	if idx.Len() != rows.Len() {
		return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
			"engine: catalog size does not match similarity matrix size")
	}
	return &Engine{catalog: idx, rows: rows}, nil
}

// pair 是排序单元：矩阵位置与该位置的原始相似度。
type pair struct {
	pos   int
	score float64
}

// Recommend 返回与第 index 行的电影最相似的 Top-K 推荐。
//
// 处理步骤：
//  1. 校验 index 是合法行号
//  2. 通过统一的行访问操作取出稠密分数行并校验完整性
//  3. 按分数降序排序；同分按原始位置升序，保证跨平台可复现
//  4. 按位置恒等排除查询电影本身——不是按"自相似度排第一"的假设排除，
//     畸形输入下自相似度未必是最大值
//  5. 取前 k 个；候选不足 k 时返回实际数量，不补齐
//  6. 反查片名并把分数转为双端钳制的百分比
//
// k <= 0 时使用 core.DefaultTopK。
func (e *Engine) Recommend(ctx context.Context, index int, k int) ([]core.Recommendation, error) {
	n := e.rows.Len()
	if index < 0 || index >= n {
		return nil, core.NewIndexOutOfRange(index, n)
	}
	if k <= 0 {
		k = core.DefaultTopK
	}

	row, err := e.rows.Row(ctx, index)
	if err != nil {
		return nil, err
	}
	if err := similarity.ValidateRow(index, row, e.catalog.Len()); err != nil {
		return nil, err
	}

	pairs := make([]pair, 0, n)
	for pos, score := range row {
		pairs = append(pairs, pair{pos: pos, score: score})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score != pairs[j].score {
			return pairs[i].score > pairs[j].score
		}
		return pairs[i].pos < pairs[j].pos
	})

	out := make([]core.Recommendation, 0, k)
	for _, p := range pairs {
		if p.pos == index {
			continue
		}
		if len(out) == k {
			break
		}
		title, err := e.catalog.TitleAt(p.pos)
		if err != nil {
			return nil, err
		}
		out = append(out, core.Recommendation{
			Title: title,
			Score: core.ClampScore(p.score),
		})
	}
	return out, nil
}
