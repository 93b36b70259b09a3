// Package movierec 是一个电影相似度推荐系统。
//
// 核心：给定一部电影与预计算的两两相似度矩阵，确定性地产出 Top-K
// 最相似的电影，分数为钳制在 [0,100] 的百分比。
//
// 设计要点：
// - 目录与矩阵解耦：catalog.Index 负责片名 ↔ 行号映射，core.RowSource
//   统一稠密/压缩两种矩阵表示（压缩表示只按需展开单行）
// - 引擎纯函数式：engine.Recommender 不持有可变状态，失败以类型化
//   错误返回，绝不 panic 穿越边界
// - Pipeline 可组合：相似度召回 → 自身排除 → 排序 → Top-K → 百分比，
//   每一步都是可替换的 Node，支持 YAML 配置驱动
package movierec

import "github.com/sayampalrecha/Movie-Recommendations-System/pipeline"

// 轻量 facade：便于用户直接 import 根包使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
