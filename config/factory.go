// Package config 把 YAML/JSON 的 Pipeline 配置组装成可运行的 Node 链。
// 需要运行期资源（目录、矩阵、存储）的 Node 通过 Resources 注入，
// 纯配置的 Node 直接从 config map 构建。
package config

import (
	"fmt"
	"time"

	"github.com/sayampalrecha/Movie-Recommendations-System/catalog"
	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/feature"
	"github.com/sayampalrecha/Movie-Recommendations-System/filter"
	"github.com/sayampalrecha/Movie-Recommendations-System/pipeline"
	"github.com/sayampalrecha/Movie-Recommendations-System/pkg/conv"
	"github.com/sayampalrecha/Movie-Recommendations-System/rank"
	"github.com/sayampalrecha/Movie-Recommendations-System/recall"
	"github.com/sayampalrecha/Movie-Recommendations-System/rerank"
)

// Resources 是构建 Node 时注入的运行期资源。
// Catalog 与 Rows 必填；Store 与 Meta 只在对应 Node 出现在配置里时需要。
type Resources struct {
	Catalog *catalog.Index
	Rows    core.RowSource
	Store   core.Store
	Meta    feature.MetadataProvider
}

// NewFactory 返回一个注册了全部内置 Node 的工厂。
//
// 支持的类型：
//   - recall.similar / recall.popular / recall.fanout
//   - filter（子项 self / expr）
//   - rank.score
//   - rerank.topn
//   - postprocess.percent / postprocess.enrich
func NewFactory(res Resources) *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	factory.Register("recall.similar", func(_ map[string]any) (pipeline.Node, error) {
		if res.Catalog == nil || res.Rows == nil {
			return nil, fmt.Errorf("recall.similar requires catalog and row source")
		}
		return &recall.SimilarRecall{Rows: res.Rows, Catalog: res.Catalog}, nil
	})

	factory.Register("recall.popular", func(cfg map[string]any) (pipeline.Node, error) {
		if res.Catalog == nil {
			return nil, fmt.Errorf("recall.popular requires catalog")
		}
		return &recall.Popular{
			Store:   res.Store,
			Key:     conv.ConfigGet[string](cfg, "key", ""),
			Titles:  conv.SliceAnyToString(cfg["titles"]),
			Catalog: res.Catalog,
			Limit:   int(conv.ConfigGetInt64(cfg, "limit", 0)),
		}, nil
	})

	factory.Register("recall.fanout", func(cfg map[string]any) (pipeline.Node, error) {
		return buildFanoutNode(res, cfg)
	})

	factory.Register("filter", buildFilterNode)

	factory.Register("rank.score", func(_ map[string]any) (pipeline.Node, error) {
		return &rank.ScoreNode{}, nil
	})

	factory.Register("rerank.topn", func(cfg map[string]any) (pipeline.Node, error) {
		return &rerank.TopNNode{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
	})

	factory.Register("postprocess.percent", func(_ map[string]any) (pipeline.Node, error) {
		return &rerank.PercentNode{}, nil
	})

	factory.Register("postprocess.enrich", func(cfg map[string]any) (pipeline.Node, error) {
		if res.Meta == nil {
			return nil, fmt.Errorf("postprocess.enrich requires a metadata provider")
		}
		return &feature.EnrichNode{
			Provider: res.Meta,
			Keys:     conv.SliceAnyToString(cfg["keys"]),
		}, nil
	})

	return factory
}

func buildFanoutNode(res Resources, cfg map[string]any) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]any)
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}

	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]any)
		if !ok {
			continue
		}
		switch sourceType := conv.ConfigGet[string](sourceMap, "type", ""); sourceType {
		case "similar":
			if res.Catalog == nil || res.Rows == nil {
				return nil, fmt.Errorf("similar source requires catalog and row source")
			}
			sources = append(sources, &recall.SimilarRecall{Rows: res.Rows, Catalog: res.Catalog})
		case "popular":
			if res.Catalog == nil {
				return nil, fmt.Errorf("popular source requires catalog")
			}
			sources = append(sources, &recall.Popular{
				Store:   res.Store,
				Key:     conv.ConfigGet[string](sourceMap, "key", ""),
				Titles:  conv.SliceAnyToString(sourceMap["titles"]),
				Catalog: res.Catalog,
				Limit:   int(conv.ConfigGetInt64(sourceMap, "limit", 0)),
			})
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}

	fanout := &recall.Fanout{
		Sources:       sources,
		Dedup:         conv.ConfigGet[bool](cfg, "dedup", true),
		MergeStrategy: conv.ConfigGet[string](cfg, "merge_strategy", ""),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = int(n)
	}
	return fanout, nil
}

func buildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]any)
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		switch filterType := conv.ConfigGet[string](filterMap, "type", ""); filterType {
		case "self":
			filters = append(filters, &filter.SelfFilter{})
		case "expr":
			expr := conv.ConfigGet[string](filterMap, "expr", "")
			f, err := filter.NewExprFilter(expr)
			if err != nil {
				return nil, fmt.Errorf("compile expr filter: %w", err)
			}
			filters = append(filters, f)
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}
