package rerank

import (
	"context"
	"testing"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

func item(index int, score float64) *core.Item {
	it := core.NewItem(index)
	it.Score = score
	return it
}

func items(n int) []*core.Item {
	out := make([]*core.Item, n)
	for i := range out {
		out[i] = item(i, 1.0-float64(i)*0.1)
	}
	return out
}

func TestTopNNode(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		k       int
		in      int
		wantLen int
	}{
		{"truncate to n", 3, 0, 10, 3},
		{"fewer than n", 5, 0, 2, 2},
		{"n unset falls back to k", 0, 4, 10, 4},
		{"n unset k unset uses default", 0, 0, 10, core.DefaultTopK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &TopNNode{N: tt.n}
			rctx := &core.RecommendContext{K: tt.k}

			out, err := node.Process(context.Background(), rctx, items(tt.in))
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if len(out) != tt.wantLen {
				t.Errorf("got %d items, want %d", len(out), tt.wantLen)
			}
		})
	}
}

func TestTopNNode_KeepsOrder(t *testing.T) {
	node := &TopNNode{N: 2}
	in := []*core.Item{item(1, 0.9), item(3, 0.5), item(2, 0.2)}

	out, err := node.Process(context.Background(), &core.RecommendContext{}, in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 2 || out[0].Index != 1 || out[1].Index != 3 {
		t.Fatalf("unexpected head: %+v", out)
	}
}

func TestPercentNode(t *testing.T) {
	node := &PercentNode{}
	tests := []struct {
		raw  float64
		want float64
	}{
		{0.9, 90},
		{0.5, 50},
		{0, 0},
		{1.2, 100}, // 浮点噪声超过 1 时钳制到 100
		{-0.1, 0},  // 负分钳制到 0
	}

	for _, tt := range tests {
		out, err := node.Process(context.Background(), nil, []*core.Item{item(0, tt.raw)})
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		if out[0].Score != tt.want {
			t.Errorf("raw %v: got %v, want %v", tt.raw, out[0].Score, tt.want)
		}
		if _, ok := out[0].Labels["score_pct"]; !ok {
			t.Errorf("raw %v: missing score_pct label", tt.raw)
		}
	}
}
