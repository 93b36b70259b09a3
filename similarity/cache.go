package similarity

import (
	"context"
	"sync"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// CachedSource 是 RowSource 的行缓存装饰器：同一行只向底层取一次，
// 之后从内存命中。替代原始实现里"资源加载一次、进程级缓存"的全局状态，
// 缓存对象由启动代码显式构造并按引用传入。
//
// 适合包在 StoreSource 这类有网络往返的来源外面；Dense/CSR 本身已在
// 内存中，无需再包一层。
type CachedSource struct {
	src core.RowSource

	mu   sync.RWMutex
	rows map[int][]float64
}

// NewCachedSource 包装一个底层来源。
func NewCachedSource(src core.RowSource) *CachedSource {
	return &CachedSource{
		src:  src,
		rows: make(map[int][]float64),
	}
}

// Len 返回底层矩阵维度。
func (c *CachedSource) Len() int { return c.src.Len() }

// Row 返回缓存或底层的第 i 行。缓存内容只读，对外返回副本。
func (c *CachedSource) Row(ctx context.Context, i int) ([]float64, error) {
	c.mu.RLock()
	cached, ok := c.rows[i]
	c.mu.RUnlock()
	if ok {
		out := make([]float64, len(cached))
		copy(out, cached)
		return out, nil
	}

	row, err := c.src.Row(ctx, i)
	if err != nil {
		return nil, err
	}

	kept := make([]float64, len(row))
	copy(kept, row)
	c.mu.Lock()
	c.rows[i] = kept
	c.mu.Unlock()

	return row, nil
}

var _ core.RowSource = (*CachedSource)(nil)
