package feature

import (
	"context"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pipeline"
	"github.com/sayampalrecha/Movie-Recommendations-System/pkg/utils"
)

// EnrichNode 是元数据注入节点：为最终候选打上 meta_* 标签，
// 供展示层渲染类型/年份等附加信息。放在 Top-N 截断之后，
// 只为真正返回的少量候选做元数据查询。
//
// 元数据获取失败不会中断链路：缺元数据的电影照常返回，只是没有标签。
type EnrichNode struct {
	Provider MetadataProvider

	// Keys 只注入这些属性；为空时注入提供方返回的全部属性
	Keys []string
}

func (n *EnrichNode) Name() string {
	return "postprocess.enrich"
}

func (n *EnrichNode) Kind() pipeline.Kind {
	return pipeline.KindPostProcess
}

func (n *EnrichNode) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.Provider == nil || len(items) == 0 {
		return items, nil
	}

	for _, it := range items {
		if it == nil || it.Title == "" {
			continue
		}

		meta, err := n.Provider.MovieMeta(ctx, it.Title)
		if err != nil {
			continue
		}

		if len(n.Keys) > 0 {
			for _, k := range n.Keys {
				if v, ok := meta[k]; ok {
					it.PutLabel("meta_"+k, utils.Label{Value: v, Source: n.Provider.Name()})
				}
			}
			continue
		}
		for k, v := range meta {
			it.PutLabel("meta_"+k, utils.Label{Value: v, Source: n.Provider.Name()})
		}
	}
	return items, nil
}
