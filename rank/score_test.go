package rank

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

func TestScoreNode(t *testing.T) {
	n := &ScoreNode{}
	items := []*core.Item{
		item(0, 0.2),
		item(1, 0.9),
		item(2, 0.5),
	}

	out, err := n.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantOrder := []int{1, 2, 0}
	for i, want := range wantOrder {
		if out[i].Index != want {
			t.Errorf("position %d: got index %d, want %d", i, out[i].Index, want)
		}
	}

	// Input slice must not be reordered.
	if items[0].Index != 0 || items[1].Index != 1 {
		t.Error("input slice was mutated")
	}
}

func TestScoreNode_TieBreak(t *testing.T) {
	n := &ScoreNode{}
	// 同分按矩阵位置升序，保证跨平台可复现
	items := []*core.Item{
		item(3, 0.5),
		item(1, 0.5),
		item(2, 0.5),
	}

	out, err := n.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantOrder := []int{1, 2, 3}
	for i, want := range wantOrder {
		if out[i].Index != want {
			t.Errorf("position %d: got index %d, want %d", i, out[i].Index, want)
		}
	}
}

func TestScoreNode_SmallInputs(t *testing.T) {
	n := &ScoreNode{}

	out, err := n.Process(context.Background(), nil, nil)
	if err != nil || len(out) != 0 {
		t.Errorf("empty input: got (%v, %v)", out, err)
	}

	one := []*core.Item{item(0, 0.5)}
	out, err = n.Process(context.Background(), nil, one)
	if err != nil || len(out) != 1 {
		t.Errorf("single input: got (%v, %v)", out, err)
	}
}
