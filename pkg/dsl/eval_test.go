package dsl

import (
	"testing"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/pkg/utils"
)

func testItem() *core.Item {
	it := core.NewItem(1)
	it.Title = "Avatar"
	it.Score = 0.9
	it.PutLabel("recall_source", utils.Label{Value: "similar", Source: "recall"})
	return it
}

func TestEval(t *testing.T) {
	rctx := &core.RecommendContext{QueryTitle: "Titanic", QueryIndex: 0, K: 5}

	tests := []struct {
		expr string
		want bool
	}{
		{`item.score > 0.05`, true},
		{`item.score > 0.95`, false},
		{`item.title != "Avatar"`, false},
		{`label.recall_source.contains("similar")`, true},
		{`item.index != rctx.query_index`, true},
		{`rctx.k == 5`, true},
		{`item.score > 0.1 && label.recall_source == "similar"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.expr, err)
			}
			got, err := p.Eval(testItem(), rctx)
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestCompile_EmptyExprAlwaysTrue(t *testing.T) {
	p, err := Compile("")
	if err != nil {
		t.Fatalf("Compile(\"\") error = %v", err)
	}
	got, err := p.Eval(nil, nil)
	if err != nil || !got {
		t.Errorf("empty expression: got (%v, %v), want (true, nil)", got, err)
	}
}

func TestCompile_SyntaxError(t *testing.T) {
	if _, err := Compile(`item.score >`); err == nil {
		t.Error("Compile() with bad syntax should fail")
	}
}

func TestEval_NonBooleanResult(t *testing.T) {
	p, err := Compile(`item.score`)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if _, err := p.Eval(testItem(), nil); err == nil {
		t.Error("non-boolean expression should fail at eval")
	}
}
