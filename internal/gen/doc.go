// Package gen provides deterministic Go code generation for the arity
// adapter variants.
//
// The WrapN builders are mechanical repetition, so they are emitted from a
// single text/template and formatted with go/format plus goimports rather
// than hand-maintained in ten copies.
package gen
