package filter

import (
	"context"
	"testing"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

func item(index int, title string, score float64) *core.Item {
	it := core.NewItem(index)
	it.Title = title
	it.Score = score
	return it
}

func TestSelfFilter(t *testing.T) {
	f := &SelfFilter{}
	rctx := &core.RecommendContext{QueryTitle: "A", QueryIndex: 0}

	tests := []struct {
		name string
		item *core.Item
		want bool
	}{
		{"query itself", item(0, "A", 1.0), true},
		{"other movie", item(1, "B", 0.9), false},
		// 自相似度不是最大值时，按位比较仍然只剔除查询电影本身
		{"query with low self score", item(0, "A", 0.1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), rctx, tt.item)
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelfFilter_NilContext(t *testing.T) {
	f := &SelfFilter{}
	got, err := f.ShouldFilter(context.Background(), nil, item(0, "A", 1.0))
	if err != nil || got {
		t.Errorf("ShouldFilter(nil rctx) = (%v, %v), want (false, nil)", got, err)
	}
}

func TestExprFilter(t *testing.T) {
	f, err := NewExprFilter(`item.score > 0.05`)
	if err != nil {
		t.Fatalf("NewExprFilter() error = %v", err)
	}

	rctx := &core.RecommendContext{QueryIndex: 0}

	if got, _ := f.ShouldFilter(context.Background(), rctx, item(1, "B", 0.9)); got {
		t.Error("score 0.9 should be kept")
	}
	if got, _ := f.ShouldFilter(context.Background(), rctx, item(2, "C", 0.01)); !got {
		t.Error("score 0.01 should be filtered")
	}
}

func TestExprFilter_CompileError(t *testing.T) {
	if _, err := NewExprFilter(`item.score >`); err == nil {
		t.Error("NewExprFilter() with bad expression should fail")
	}
}

func TestFilterNode(t *testing.T) {
	exprF, err := NewExprFilter(`item.score > 0.05`)
	if err != nil {
		t.Fatal(err)
	}
	n := &FilterNode{Filters: []Filter{&SelfFilter{}, exprF}}
	rctx := &core.RecommendContext{QueryTitle: "A", QueryIndex: 0}

	items := []*core.Item{
		item(0, "A", 1.0),  // 查询电影本身
		item(1, "B", 0.9),  // kept
		item(2, "C", 0.01), // near-zero score
		item(3, "D", 0.5),  // kept
	}

	out, err := n.Process(context.Background(), rctx, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 2 || out[0].Index != 1 || out[1].Index != 3 {
		t.Fatalf("unexpected survivors: %+v", out)
	}

	// Filtered items carry a reason label for explain output.
	if lbl, ok := items[0].Labels["filtered"]; !ok || lbl.Source != "filter.self" {
		t.Errorf("query item missing filtered label: %+v", items[0].Labels)
	}
	if lbl, ok := items[2].Labels["filtered"]; !ok || lbl.Source != "filter.expr" {
		t.Errorf("near-zero item missing filtered label: %+v", items[2].Labels)
	}
}

func TestFilterNode_NoFilters(t *testing.T) {
	n := &FilterNode{}
	items := []*core.Item{item(0, "A", 1.0)}
	out, err := n.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("no-op node should pass items through, got %d", len(out))
	}
}
