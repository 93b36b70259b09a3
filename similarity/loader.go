package similarity

import (
	"encoding/json"
	"fmt"
	"os"
)

// csrArtifact 是压缩矩阵 JSON 工件，字段对应 csr_matrix 导出：
//
//	{"n": 4, "row_ptr": [0,2,...], "cols": [1,3,...], "vals": [0.9,0.5,...]}
type csrArtifact struct {
	N      int       `json:"n"`
	RowPtr []int     `json:"row_ptr"`
	Cols   []int     `json:"cols"`
	Vals   []float64 `json:"vals"`
}

// LoadDenseJSON 从 JSON 文件加载稠密矩阵。
func LoadDenseJSON(path string) (*Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return NewDense(rows)
}

// LoadCSRJSON 从 JSON 文件加载压缩矩阵。
func LoadCSRJSON(path string) (*CSR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var art csrArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return NewCSR(art.N, art.RowPtr, art.Cols, art.Vals)
}
