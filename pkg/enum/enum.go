package enum

import (
	"fmt"
	"reflect"
)

// registry maps an enum type name to the set of values registered for it.
var registry = map[string]any{}

type valueSet[T comparable] map[string]T

// New registers a value as a member of the enum type T and returns it. It is
// meant to be called from package-level var declarations.
func New[T comparable](value T) T {
	name := reflect.TypeOf(value).Name()
	set, ok := registry[name].(valueSet[T])
	if !ok {
		set = valueSet[T]{}
		registry[name] = set
	}

	set[reflect.ValueOf(value).String()] = value
	return value
}

// ToEnum parses s into a registered member of the enum type T.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	set, ok := registry[reflect.TypeOf(zero).Name()].(valueSet[T])
	if !ok {
		return zero, fmt.Errorf("unknown enum type %T", zero)
	}

	value, ok := set[s]
	if !ok {
		return zero, fmt.Errorf("invalid value %s of enum %T", s, zero)
	}

	return value, nil
}
