package udf

import (
	"fmt"
	"reflect"
)

//go:generate go run column-bridge/cmd/column-bridge gen

// Adapter is the uniform delegate over a wrapped vector function. It carries
// the declared arity and the captured function, nothing else; the concrete
// column types are erased at construction time.
//
// Adapters hold no mutable state and are safe for concurrent invocation,
// though the external worker loop invokes each one from a single goroutine.
type Adapter struct {
	arity int
	call  func(args []Column) (Column, error)
}

// Arity returns the number of columns the wrapped function takes.
func (a Adapter) Arity() int {
	return a.arity
}

// Invoke calls the wrapped function with args. The length of args must equal
// the declared arity and every argument's dynamic type must match the wrapped
// function's parameter type; both are invocation-boundary errors, never
// construction-time ones.
func (a Adapter) Invoke(args []Column) (Column, error) {
	if len(args) != a.arity {
		return nil, &ArgumentCountError{Want: a.arity, Got: len(args)}
	}

	return a.call(args)
}

// ArgumentCountError reports an invocation with the wrong number of columns.
type ArgumentCountError struct {
	Want int
	Got  int
}

// Error implements the error interface.
func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("argument count mismatch: function takes %d columns, got %d", e.Want, e.Got)
}

// ArgumentTypeError reports an invocation argument whose dynamic type does not
// match the wrapped function's parameter type.
type ArgumentTypeError struct {
	Index int
	Want  reflect.Type
	Got   reflect.Type
}

// Error implements the error interface.
func (e *ArgumentTypeError) Error() string {
	got := "<nil>"
	if e.Got != nil {
		got = e.Got.String()
	}

	return fmt.Sprintf("argument %d: have %s, want %s", e.Index, got, e.Want)
}

// columnAt asserts args[i] back to the wrapped parameter type.
func columnAt[T Column](args []Column, i int) (T, error) {
	col, ok := args[i].(T)
	if !ok {
		var zero T
		return zero, &ArgumentTypeError{Index: i, Want: reflect.TypeFor[T](), Got: reflect.TypeOf(args[i])}
	}

	return col, nil
}
