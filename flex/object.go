package flex

import (
	"encoding/json"
	"fmt"
)

// Object holds a nested record the API may replace with a scalar placeholder,
// typically false or "". Present is set only when an object was decoded.
type Object[T any] struct {
	Value   T
	Present bool
}

// Some wraps v as a present object.
func Some[T any](v T) Object[T] {
	return Object[T]{Value: v, Present: true}
}

// UnmarshalJSON decodes a JSON object into Value and resets to the zero T for
// any scalar. Errors inside the object propagate unchanged.
func (o *Object[T]) UnmarshalJSON(data []byte) error {
	var zero T

	switch kind := KindOf(data); kind {
	case KindStruct:
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		o.Value, o.Present = v, true
	case KindList:
		return &KindError{Target: fmt.Sprintf("%T", zero), Kind: kind}
	default:
		o.Value, o.Present = zero, false
	}
	return nil
}

// MarshalJSON renders an absent object as null so it decodes back as absent.
func (o Object[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
