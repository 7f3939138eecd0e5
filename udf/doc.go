// Package udf wraps typed vector functions behind one uniform invocation contract.
//
// A vector function takes between 1 and 10 columnar containers and returns one
// columnar container. The WrapN builders erase the concrete container types so
// an external dispatcher can invoke any wrapped function through Adapter
// without static knowledge of its arity or column types.
//
// Key types:
//   - Column: the columnar container capability (owned by the arrow collaborators)
//   - Adapter: the arity-erased delegate handed to the dispatcher
//   - Parse: reflective validation of a vector function signature
package udf
