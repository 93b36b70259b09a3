package feature

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/feast"
)

// FeastProvider 从 Feast 在线特征服务读取电影元数据。
// 实体键为片名；特征名采用 Feast 的 "view:feature" 形式，
// 注入标签时去掉 view 前缀（"movie_stats:genre" -> "genre"）。
type FeastProvider struct {
	Client feast.Client

	// EntityKey 实体键名，默认 "movie_title"
	EntityKey string

	// Features 要拉取的特征列表，例如 ["movie_stats:genre", "movie_stats:popularity"]
	Features []string
}

func (p *FeastProvider) Name() string { return "feature.feast" }

func (p *FeastProvider) MovieMeta(ctx context.Context, title string) (map[string]string, error) {
	if p.Client == nil || len(p.Features) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidInput,
			"feature: feast provider not configured")
	}

	entityKey := p.EntityKey
	if entityKey == "" {
		entityKey = "movie_title"
	}

	resp, err := p.Client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   p.Features,
		EntityRows: []map[string]any{{entityKey: title}},
	})
	if err != nil {
		return nil, fmt.Errorf("feast online features: %w", err)
	}
	if len(resp.FeatureVectors) == 0 || len(resp.FeatureVectors[0].Values) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound,
			"feature: no metadata for title "+title)
	}

	out := make(map[string]string, len(resp.FeatureVectors[0].Values))
	for name, v := range resp.FeatureVectors[0].Values {
		key := name
		if _, short, ok := strings.Cut(name, ":"); ok {
			key = short
		}
		out[key] = stringifyFeature(v)
	}
	return out, nil
}

func stringifyFeature(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

var _ MetadataProvider = (*FeastProvider)(nil)
