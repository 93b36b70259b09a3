// Package catalog 维护片名目录：片名到相似度矩阵行号的稳定映射。
//
// 目录的顺序必须与相似度矩阵的行/列顺序一致，且在矩阵的生命周期内不可
// 重新排序。需要按字母序展示时，Titles 返回排序后的副本，内部顺序不动。
package catalog

import (
	"fmt"
	"sort"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

// Index 是片名目录：持有与矩阵同序的片名列表，以及片名到行号的查找表。
// 构造完成后只读，可被多个 goroutine 并发使用。
type Index struct {
	titles  []string
	byTitle map[string]int
}

// NewIndex 根据与相似度矩阵同序的片名列表构建目录。
// 片名必须唯一且非空，否则无法保证 Lookup 的确定性。
func NewIndex(titles []string) (*Index, error) {
	if len(titles) == 0 {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
			"catalog: empty title list")
	}

	byTitle := make(map[string]int, len(titles))
	ordered := make([]string, len(titles))
	for i, title := range titles {
		if title == "" {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: empty title at position %d", i))
		}
		if prev, ok := byTitle[title]; ok {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: duplicate title %q at positions %d and %d", title, prev, i))
		}
		byTitle[title] = i
		ordered[i] = title
	}

	return &Index{titles: ordered, byTitle: byTitle}, nil
}

// Len 返回目录中的电影数量。
func (idx *Index) Len() int {
	return len(idx.titles)
}

// Lookup 将片名解析为矩阵行号。精确匹配；片名不存在时返回 NOT_FOUND，
// 绝不静默返回默认行号。
func (idx *Index) Lookup(title string) (int, error) {
	i, ok := idx.byTitle[title]
	if !ok {
		return 0, core.NewTitleNotFound(title)
	}
	return i, nil
}

// TitleAt 按行号反查片名（引擎将排序后的位置映射回片名时使用）。
func (idx *Index) TitleAt(i int) (string, error) {
	if i < 0 || i >= len(idx.titles) {
		return "", core.NewIndexOutOfRange(i, len(idx.titles))
	}
	return idx.titles[i], nil
}

// Titles 返回按字母序排序的片名副本，用于填充选择界面。
// 返回副本是刻意的：内部顺序与矩阵绑定，不能被外部排序污染。
func (idx *Index) Titles() []string {
	out := make([]string, len(idx.titles))
	copy(out, idx.titles)
	sort.Strings(out)
	return out
}

// Movies 返回目录内容的快照（按矩阵顺序）。
func (idx *Index) Movies() []core.Movie {
	out := make([]core.Movie, len(idx.titles))
	for i, title := range idx.titles {
		out[i] = core.Movie{Title: title, Index: i}
	}
	return out
}
