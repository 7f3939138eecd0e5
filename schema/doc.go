// Package schema translates Go types into the query engine's JSON schema grammar.
//
// Resolution is ordered: exact scalar-table lookup first, then the generic map
// capability, then the generic sequence capability. A type matching none of the
// three fails with UnsupportedTypeError.
//
// Key entry points:
//   - Resolve: recursive reflect.Type -> JSON descriptor
//   - Shape: container capability classification
//   - ScalarName: lookup in the fixed scalar wire vocabulary
package schema
