// Package similarity 提供相似度矩阵的物理表示与加载。
//
// 所有表示统一实现 core.RowSource：按行号取出一行稠密分数。
// 排名引擎只依赖这一个能力，不感知底层是稠密数组、压缩稀疏行
// 还是外部 KV 存储。
package similarity

import (
	"context"
	"fmt"
	"math"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// Dense 是全量物化的 N×N 相似度矩阵。
// 加载一次后只读，Row 直接切出对应行的副本。
type Dense struct {
	rows [][]float64
	n    int
}

// NewDense 构建稠密矩阵并校验方阵约束：每一行长度必须等于行数。
// 对称性是上游构造的约定，这里不做强制。
func NewDense(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
			"similarity: empty matrix")
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, core.NewMalformedRow(i,
				fmt.Sprintf("length %d, want %d", len(row), n))
		}
	}
	return &Dense{rows: rows, n: n}, nil
}

// Len 返回矩阵维度。
func (d *Dense) Len() int { return d.n }

// Row 返回第 i 行的副本。副本隔离了内部数据，调用方可以安全持有。
func (d *Dense) Row(_ context.Context, i int) ([]float64, error) {
	if i < 0 || i >= d.n {
		return nil, core.NewIndexOutOfRange(i, d.n)
	}
	out := make([]float64, d.n)
	copy(out, d.rows[i])
	return out, nil
}

var _ core.RowSource = (*Dense)(nil)

// ValidateRow 校验一行稠密分数：长度必须等于 n，且不含 NaN。
// 引擎在消费任何 RowSource 的输出前调用它，统一行完整性检查。
func ValidateRow(index int, row []float64, n int) error {
	if len(row) != n {
		return core.NewMalformedRow(index,
			fmt.Sprintf("length %d, want %d", len(row), n))
	}
	for j, v := range row {
		if math.IsNaN(v) {
			return core.NewMalformedRow(index,
				fmt.Sprintf("NaN at position %d", j))
		}
	}
	return nil
}
