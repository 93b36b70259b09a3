package core

import "context"

// RowSource 是相似度矩阵的领域接口：按行号取出一行稠密相似度分数。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（similarity）实现
//   - 稠密与压缩（稀疏）两种物理表示统一在这一个能力之后：
//     稠密实现直接透传，压缩实现只展开被请求的那一行，
//     绝不物化整个矩阵
//   - 排序/排名算法内部因此不需要感知存储形态
//
// 实现：
//   - similarity.Dense 稠密矩阵
//   - similarity.CSR 压缩稀疏行矩阵（按需展开单行）
//   - similarity.StoreSource 基于 KeyValueStore 的行存储（可接 Redis）
//   - similarity.CachedSource 行缓存装饰器
type RowSource interface {
	// Len 返回矩阵维度 N（电影数量）
	Len() int

	// Row 返回第 i 行的稠密分数序列，长度必须等于 Len()。
	// i 越界时返回 INDEX_OUT_OF_RANGE；行内容损坏时返回 MALFORMED_ROW。
	// 返回的切片归调用方所有，实现不得在之后修改它。
	Row(ctx context.Context, i int) ([]float64, error)
}
