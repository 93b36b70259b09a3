package core

// Movie 是目录中的一部电影：Title 作为查找键，Index 是它在相似度矩阵中
// 固定的行/列位置。目录一旦与某个矩阵绑定，Index 的分配就不能再变。
type Movie struct {
	Title string
	Index int
}

// Recommendation 是推荐结果的最小输出单元。
// Score 是百分比相似度，已被钳制在 [0, 100]（上游余弦相似度 * 100）。
type Recommendation struct {
	Title string  `json:"title"`
	Score float64 `json:"similarity_score"`
}

// ClampScore 将原始相似度（通常 ∈ [0,1]）转为百分比并双端钳制。
// 上游构造理应只产生非负值，这里仍然在两端钳制以抵御损坏数据。
func ClampScore(raw float64) float64 {
	pct := raw * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
