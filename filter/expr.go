package filter

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/ethplorer/ethplorer"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	kind       Kind
	expression string
	program    *vm.Program
	custom     map[string]any
}

type cacheKey struct {
	kind       Kind
	expression string
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[cacheKey, *exprFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[cacheKey, *exprFilter]
}

// Compile compiles an expression into an executable filter. Unknown variable
// names are rejected here rather than at evaluation time.
func (c *exprCompiler) Compile(kind Kind, expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	key := cacheKey{kind: kind, expression: expression}
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached, nil
		}
	}

	env, err := sampleEnv(kind)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Position:   -1,
			Err:        err,
		}
	}
	maps.Copy(env, c.helperFuncs)

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		position := -1
		var fileErr *file.Error
		if errors.As(err, &fileErr) {
			position = fileErr.Column
		}
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Position:   position,
			Err:        err,
		}
	}

	filter := &exprFilter{
		kind:       kind,
		expression: expression,
		program:    program,
		custom:     c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(key, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate runs the filter against a record environment. Custom functions
// the filter was compiled with are added to env unless env defines them.
func (f *exprFilter) Evaluate(env Env) (bool, error) {
	for name, fn := range f.custom {
		if _, ok := env[name]; !ok {
			env[name] = fn
		}
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Kind:       f.kind,
			Err:        err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// Kind returns the record kind the filter was compiled for
func (f *exprFilter) Kind() Kind {
	return f.kind
}

// addHelperFunctions adds the record independent helpers to env
func addHelperFunctions(env Env) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	// startsWith and endsWith are reserved operators in expr
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// sampleEnv returns the environment of a zero record of kind, used to type
// check expressions at compile time.
func sampleEnv(kind Kind) (Env, error) {
	switch kind {
	case KindToken:
		return TokenEnv(&ethplorer.TokenInfo{}), nil
	case KindHolder:
		return HolderEnv(&ethplorer.Holder{}), nil
	case KindOperation:
		return OperationEnv(&ethplorer.Operation{}), nil
	default:
		return nil, fmt.Errorf("unknown record kind %d", int(kind))
	}
}
