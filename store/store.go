package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.Store 和 core.KeyValueStore 接口。
//
// 本系统中存储承载三类数据：
//   - 相似度矩阵行（Hash：similarity.StoreSource）
//   - 热门片单（SortedSet：recall.Popular）
//   - 电影元数据（Hash：feature.StoreProvider）
//
// 示例：
//   var s core.Store = NewMemoryStore()
//   var kv core.KeyValueStore = NewMemoryStore()
