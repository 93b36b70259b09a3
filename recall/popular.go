package recall

import (
	"context"
	"encoding/json"

	"github.com/sayampalrecha/Movie-Recommendations-System/catalog"
	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pipeline"
	"github.com/sayampalrecha/Movie-Recommendations-System/pkg/utils"
)

// Popular 是热门片单召回源：目录里没有相似度信号时的兜底展示
// （首页"大家都在看"一栏）。支持从 Store 读取热门片名列表：
//   - 如果 Store 实现了 KeyValueStore，优先使用 ZRange（有序集合，按热度排序）
//   - 否则从普通 key 读取 JSON 数组
//   - 如果 Store 为空，使用内存中的 Titles 作为 fallback
//
// Popular 同时实现了 Source 和 Node 接口。
type Popular struct {
	Store   core.Store
	Key     string // 存储 key，例如 "popular:titles"
	Titles  []string
	Catalog *catalog.Index

	// Limit 最多返回的热门条数；<= 0 时取 100
	Limit int
}

func (r *Popular) Name() string        { return "recall.popular" }
func (r *Popular) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *Popular) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *Popular) Recall(
	ctx context.Context,
	_ *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Catalog == nil {
		return nil, nil
	}

	limit := r.Limit
	if limit <= 0 {
		limit = 100
	}

	var titles []string
	if r.Store != nil && r.Key != "" {
		if kvStore, ok := r.Store.(core.KeyValueStore); ok {
			members, err := kvStore.ZRange(ctx, r.Key, 0, int64(limit)-1)
			if err == nil && len(members) > 0 {
				titles = members
			}
		} else {
			data, err := r.Store.Get(ctx, r.Key)
			if err == nil {
				var parsed []string
				if json.Unmarshal(data, &parsed) == nil {
					titles = parsed
				}
			}
		}
	}

	// Fallback：使用内存片单
	if len(titles) == 0 {
		titles = r.Titles
	}

	out := make([]*core.Item, 0, len(titles))
	for _, title := range titles {
		index, err := r.Catalog.Lookup(title)
		if err != nil {
			// 片单可能比目录新；不在目录里的片名直接跳过
			continue
		}
		it := core.NewItem(index)
		it.Title = title
		it.PutLabel("recall_source", utils.Label{Value: "popular", Source: "recall"})
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
