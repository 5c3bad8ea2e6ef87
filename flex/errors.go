package flex

import "fmt"

// KindError reports a JSON value whose kind no variant of the target accepts,
// such as an array where a number or an object was expected.
type KindError struct {
	Target string
	Kind   Kind
}

// Error implements the error interface
func (e *KindError) Error() string {
	return fmt.Sprintf("flex: cannot decode JSON %s into %s", e.Kind, e.Target)
}
