// Package feast 封装 Feast Feature Store 的在线特征获取。
// 本系统只消费在线特征：按片名实体拉取电影元数据特征。
package feast

import (
	"context"
	"time"
)

// Client 是 Feast 在线特征服务的客户端接口。
//
// Feast 是一个开源的 Feature Store；这里只抽象本系统用到的能力
// （在线特征获取），方便在测试中用假实现替换。
//
// 参考：https://github.com/feast-dev/feast
type Client interface {
	// GetOnlineFeatures 获取在线特征。
	//
	// 参数：
	//   - Features: 特征名称列表，例如 ["movie_stats:popularity"]
	//   - EntityRows: 实体行，例如 [{"movie_title": "Avatar"}]
	//
	// 返回每个实体行对应的特征向量。
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 获取在线特征请求
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表，例如 ["movie_stats:genre", "movie_stats:popularity"]
	Features []string

	// EntityRows 实体行，例如 [{"movie_title": "Avatar"}]
	EntityRows []map[string]any

	// Project 项目名称（可选，覆盖客户端默认值）
	Project string
}

// GetOnlineFeaturesResponse 获取在线特征响应
type GetOnlineFeaturesResponse struct {
	// FeatureVectors 特征向量列表，每个元素对应一个实体行
	FeatureVectors []FeatureVector
}

// FeatureVector 特征向量
type FeatureVector struct {
	// Values 特征值，key 为特征名称
	Values map[string]any

	// EntityRow 对应的实体行
	EntityRow map[string]any
}

// ClientConfig 客户端配置
type ClientConfig struct {
	Endpoint string
	Project  string
	Timeout  time.Duration
}

// ClientOption 客户端配置选项
type ClientOption func(*ClientConfig)

// WithTimeout 设置请求超时
func WithTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = d
	}
}
