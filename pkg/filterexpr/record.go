package filterexpr

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
)

// ErrEmptyExpression is returned when compiling a blank filter.
var ErrEmptyExpression = errors.New("filter expression is empty")

// Record variables exposed to expressions.
const (
	VarWord          = "word"
	VarPronunciation = "pronunciation"
	VarTranslation   = "translation"
	VarPosition      = "position"
)

var recordEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(VarWord, cel.ListType(cel.StringType)),
		cel.Variable(VarPronunciation, cel.ListType(cel.StringType)),
		cel.Variable(VarTranslation, cel.ListType(cel.StringType)),
		cel.Variable(VarPosition, cel.IntType),
	)
})

// RecordFilter is a compiled boolean CEL expression evaluated against one
// dictionary record, e.g. `translation.exists(t, t.contains("colour"))`.
type RecordFilter struct {
	expr string
	prg  cel.Program
}

// CompileRecordFilter parses and type-checks expr.
func CompileRecordFilter(expr string) (*RecordFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	env, err := recordEnv()
	if err != nil {
		return nil, fmt.Errorf("build cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter must evaluate to bool, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("plan filter: %w", err)
	}
	return &RecordFilter{expr: expr, prg: prg}, nil
}

func (f *RecordFilter) String() string { return f.expr }

// Match evaluates the filter. position is the record's index in the full dictionary.
func (f *RecordFilter) Match(word, pronunciation, translation []string, position int) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{
		VarWord:          word,
		VarPronunciation: pronunciation,
		VarTranslation:   translation,
		VarPosition:      int64(position),
	})
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.expr, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.expr, out.Value())
	}
	return matched, nil
}
