package schedule

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultLabelExpr renders the classic "Person: task" cell text.
const DefaultLabelExpr = `person + ": " + task`

// LabelTemplate renders the text written into a claimed slot from an
// expression over the scheduling environment (person, task, tasks, date).
type LabelTemplate struct {
	expression string
	cache      sync.Map // expression string → compiled *vm.Program
}

// NewLabelTemplate creates a template from an expr expression. An empty
// expression falls back to DefaultLabelExpr.
func NewLabelTemplate(expression string) *LabelTemplate {
	if expression == "" {
		expression = DefaultLabelExpr
	}
	return &LabelTemplate{expression: expression}
}

// Render evaluates the template against the given environment. The result
// must be a string.
func (t *LabelTemplate) Render(env map[string]any) (string, error) {
	program, err := t.compile(env)
	if err != nil {
		return "", fmt.Errorf("compile label template %q: %w", t.expression, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return "", fmt.Errorf("render label template %q: %w", t.expression, err)
	}
	s, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("label template %q evaluated to %T, expected string", t.expression, out)
	}
	return s, nil
}

func (t *LabelTemplate) compile(env map[string]any) (*vm.Program, error) {
	if cached, ok := t.cache.Load(t.expression); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(t.expression, expr.Env(env))
	if err != nil {
		return nil, err
	}
	t.cache.Store(t.expression, program)
	return program, nil
}
