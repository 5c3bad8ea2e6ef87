package filter

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/expr-lang/expr/parser"
)

// Manager keeps named filter expressions, typically from the config file,
// and compiles them on demand for the record kind they are applied to.
type Manager struct {
	compiler Compiler
	filters  map[string]string
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		filters:  make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilter registers a new filter or updates an existing one. Only the
// syntax is checked here; variable names are checked when the filter is
// compiled for a record kind.
func (m *Manager) RegisterFilter(name, expression string) error {
	name = strings.TrimSpace(name)
	expression = strings.TrimSpace(expression)
	if name == "" {
		return fmt.Errorf("filter name is required")
	}
	if expression == "" {
		return fmt.Errorf("filter '%s' has an empty expression", name)
	}
	if _, err := parser.Parse(expression); err != nil {
		return fmt.Errorf("failed to parse filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = expression
	m.mu.Unlock()

	return nil
}

// RegisterFilters registers multiple filters at once. Nothing is registered
// if any of them fails to parse.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	staged := NewManager(WithCompiler(m.compiler))
	for name, expression := range filters {
		if err := staged.RegisterFilter(name, expression); err != nil {
			return err
		}
	}

	m.mu.Lock()
	for name, expression := range staged.filters {
		m.filters[name] = expression
	}
	m.mu.Unlock()

	return nil
}

// UnregisterFilter removes a filter
func (m *Manager) UnregisterFilter(name string) {
	m.mu.Lock()
	delete(m.filters, name)
	m.mu.Unlock()
}

// GetFilter returns the expression registered under name
func (m *Manager) GetFilter(name string) (string, bool) {
	m.mu.RLock()
	expression, exists := m.filters[name]
	m.mu.RUnlock()
	return expression, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.filters))
	for name := range m.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve compiles ref for kind. A ref naming a registered filter uses that
// filter's expression; anything else is compiled as an expression itself.
func (m *Manager) Resolve(kind Kind, ref string) (CompiledFilter, error) {
	ref = strings.TrimSpace(ref)

	expression := ref
	if registered, ok := m.GetFilter(ref); ok {
		expression = registered
	}

	filter, err := m.compiler.Compile(kind, expression)
	if err != nil {
		if expression != ref {
			return nil, fmt.Errorf("failed to compile filter '%s': %w", ref, err)
		}
		return nil, err
	}
	return filter, nil
}
