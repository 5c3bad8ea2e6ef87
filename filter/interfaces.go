package filter

// Kind selects the record type an expression is evaluated against. Each kind
// exposes its own set of variables.
type Kind int

const (
	// KindToken evaluates against ethplorer.TokenInfo
	KindToken Kind = iota
	// KindHolder evaluates against ethplorer.Holder
	KindHolder
	// KindOperation evaluates against ethplorer.Operation
	KindOperation
)

func (k Kind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindHolder:
		return "holder"
	case KindOperation:
		return "operation"
	default:
		return "unknown"
	}
}

// Env is the set of variables and helpers an expression sees
type Env = map[string]any

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	// Evaluate checks if a record environment matches the filter
	Evaluate(env Env) (bool, error)

	// Expression returns the original filter expression
	Expression() string

	// Kind returns the record kind the filter was compiled for
	Kind() Kind
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and type-checks an expression against the variables of kind
	Compile(kind Kind, expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
