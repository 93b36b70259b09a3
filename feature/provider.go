// Package feature 提供电影元数据的获取与注入。
// 元数据（类型、年份、热度等）只用于丰富推荐结果的展示与解释，
// 不参与相似度计算——矩阵是上游预计算好的输入。
package feature

import (
	"context"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// MetadataProvider 是电影元数据的领域接口。
//
// 实现：
//   - StoreProvider 基于 core.KeyValueStore（Hash: movie:meta:<title>）
//   - FeastProvider 基于 Feast Feature Store（在线特征服务）
type MetadataProvider interface {
	// Name 返回提供方名称（用于日志/标签）
	Name() string

	// MovieMeta 返回一部电影的元数据键值对。
	// 片名没有元数据时返回 NOT_FOUND。
	MovieMeta(ctx context.Context, title string) (map[string]string, error)
}

// metaKeyPrefix 是 Store 中元数据 Hash 的 key 前缀。
const metaKeyPrefix = "movie:meta:"

// StoreProvider 从 KeyValueStore 读取元数据：每部电影一个 Hash，
// field 为属性名（genre / year / popularity ...）。
type StoreProvider struct {
	Store core.KeyValueStore
}

func (p *StoreProvider) Name() string { return "feature.store" }

func (p *StoreProvider) MovieMeta(ctx context.Context, title string) (map[string]string, error) {
	fields, err := p.Store.HGetAll(ctx, metaKeyPrefix+title)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound,
			"feature: no metadata for title "+title)
	}

	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = string(v)
	}
	return out, nil
}

// SaveMeta 写入一部电影的元数据（离线任务灌数据用）。
func SaveMeta(ctx context.Context, kv core.KeyValueStore, title string, meta map[string]string) error {
	for k, v := range meta {
		if err := kv.HSet(ctx, metaKeyPrefix+title, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

var _ MetadataProvider = (*StoreProvider)(nil)
