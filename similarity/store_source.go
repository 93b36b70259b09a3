package similarity

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// StoreSource 是基于 core.KeyValueStore 的行存储：矩阵的每一行以 JSON
// 数组存放在同一个 Hash 下，field 为行号。生产环境可接 RedisStore，
// 让多个进程共享一份常驻矩阵。
type StoreSource struct {
	Store core.KeyValueStore
	Key   string // Hash key，例如 "sim:rows"
	N     int    // 矩阵维度
}

// Len 返回矩阵维度。
func (s *StoreSource) Len() int { return s.N }

// Row 从存储读取并反序列化第 i 行。
// 行缺失视为数据完整性问题（MALFORMED_ROW），而不是空行。
func (s *StoreSource) Row(ctx context.Context, i int) ([]float64, error) {
	if i < 0 || i >= s.N {
		return nil, core.NewIndexOutOfRange(i, s.N)
	}

	data, err := s.Store.HGet(ctx, s.Key, strconv.Itoa(i))
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, core.NewMalformedRow(i, "row missing from store")
		}
		return nil, fmt.Errorf("store hget: %w", err)
	}

	var row []float64
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, core.NewMalformedRow(i, fmt.Sprintf("bad json: %v", err))
	}
	if len(row) != s.N {
		return nil, core.NewMalformedRow(i,
			fmt.Sprintf("length %d, want %d", len(row), s.N))
	}
	return row, nil
}

var _ core.RowSource = (*StoreSource)(nil)

// SaveRows 把任意 RowSource 的全部行物化到存储，返回可用的 StoreSource。
// 通常由离线任务调用一次，把转换好的矩阵工件灌入 Redis。
func SaveRows(ctx context.Context, kv core.KeyValueStore, key string, src core.RowSource) (*StoreSource, error) {
	n := src.Len()
	for i := 0; i < n; i++ {
		row, err := src.Row(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", i, err)
		}
		data, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("marshal row %d: %w", i, err)
		}
		if err := kv.HSet(ctx, key, strconv.Itoa(i), data); err != nil {
			return nil, fmt.Errorf("store row %d: %w", i, err)
		}
	}
	return &StoreSource{Store: kv, Key: key, N: n}, nil
}
