package similarity

import (
	"context"
	"fmt"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// CSR 是压缩稀疏行（Compressed Sparse Row）表示的 N×N 相似度矩阵。
// 只存储非零项；Row 按需把被请求的那一行展开为稠密序列，
// 绝不物化整个矩阵。
//
// 存储布局（与 scipy 的 csr_matrix 一致）：
//   - RowPtr: 长度 N+1，第 i 行的非零项位于 Cols/Vals 的 [RowPtr[i], RowPtr[i+1])
//   - Cols:   非零项的列号
//   - Vals:   非零项的分数
type CSR struct {
	n      int
	rowPtr []int
	cols   []int
	vals   []float64
}

// NewCSR 构建 CSR 矩阵并校验索引结构的自洽性。
func NewCSR(n int, rowPtr []int, cols []int, vals []float64) (*CSR, error) {
	if n <= 0 {
		return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
			"similarity: empty matrix")
	}
	if len(rowPtr) != n+1 {
		return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
			fmt.Sprintf("similarity: row_ptr length %d, want %d", len(rowPtr), n+1))
	}
	if len(cols) != len(vals) {
		return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
			fmt.Sprintf("similarity: cols length %d != vals length %d", len(cols), len(vals)))
	}
	if rowPtr[0] != 0 || rowPtr[n] != len(vals) {
		return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
			"similarity: row_ptr does not span the value array")
	}
	for i := 0; i < n; i++ {
		if rowPtr[i] > rowPtr[i+1] {
			return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
				fmt.Sprintf("similarity: row_ptr decreases at row %d", i))
		}
	}
	for k, c := range cols {
		if c < 0 || c >= n {
			return nil, core.NewDomainError(core.ModuleSimilarity, core.ErrorCodeInvalidInput,
				fmt.Sprintf("similarity: column %d out of range at entry %d", c, k))
		}
	}
	return &CSR{n: n, rowPtr: rowPtr, cols: cols, vals: vals}, nil
}

// FromDense 把稠密矩阵压缩为 CSR（零项被丢弃）。
// 主要用于离线工件转换与表示透明性测试。
func FromDense(d *Dense) *CSR {
	n := d.Len()
	rowPtr := make([]int, n+1)
	var cols []int
	var vals []float64
	for i := 0; i < n; i++ {
		for j, v := range d.rows[i] {
			if v != 0 {
				cols = append(cols, j)
				vals = append(vals, v)
			}
		}
		rowPtr[i+1] = len(vals)
	}
	return &CSR{n: n, rowPtr: rowPtr, cols: cols, vals: vals}
}

// Len 返回矩阵维度。
func (c *CSR) Len() int { return c.n }

// Row 将第 i 行展开为稠密序列。未存储的位置补 0。
func (c *CSR) Row(_ context.Context, i int) ([]float64, error) {
	if i < 0 || i >= c.n {
		return nil, core.NewIndexOutOfRange(i, c.n)
	}
	out := make([]float64, c.n)
	for k := c.rowPtr[i]; k < c.rowPtr[i+1]; k++ {
		out[c.cols[k]] = c.vals[k]
	}
	return out, nil
}

var _ core.RowSource = (*CSR)(nil)
