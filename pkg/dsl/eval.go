package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// getCELEnv 获取或创建 CEL 环境，定义可引用的变量
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
			cel.Variable("label", cel.DynType),
			cel.Variable("rctx", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Program 是编译后的过滤表达式，使用 CEL (Common Expression Language) 实现。
// 编译一次，可被多个 goroutine 并发 Eval。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.score > 0.05 / item.score >= 0.5
//   - 片名：item.title != "Avatar"
//   - 标签：label.recall_source.contains("popular")
//   - 上下文：item.index != rctx.query_index
//   - 逻辑组合：item.score > 0.1 && label.recall_source == "similar"
type Program struct {
	expr string
	prg  cel.Program
}

// Compile 编译 DSL 表达式。空表达式视为恒真。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return &Program{expr: expr}, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// Eval 对单个候选执行表达式，返回布尔结果。
// 表达式必须返回 bool；对不存在的 key 应使用 label.key != null 检查存在性。
func (p *Program) Eval(item *core.Item, rctx *core.RecommendContext) (bool, error) {
	if p.prg == nil {
		return true, nil
	}

	out, _, err := p.prg.Eval(buildInput(item, rctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(item *core.Item, rctx *core.RecommendContext) map[string]any {
	labels := make(map[string]string)
	itemMap := make(map[string]any)
	if item != nil {
		itemMap["index"] = item.Index
		itemMap["title"] = item.Title
		itemMap["score"] = item.Score
		for k, lbl := range item.Labels {
			labels[k] = lbl.Value
		}
	}

	rctxMap := make(map[string]any)
	if rctx != nil {
		rctxMap["query_title"] = rctx.QueryTitle
		rctxMap["query_index"] = rctx.QueryIndex
		rctxMap["k"] = rctx.TopK()
		for k, v := range rctx.Params {
			rctxMap[k] = v
		}
	}

	return map[string]any{
		"item":  itemMap,
		"label": labels,
		"rctx":  rctxMap,
	}
}
