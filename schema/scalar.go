package schema

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
)

// Decimal precision and scale are fixed by the engine contract.
const (
	DecimalPrecision = 28
	DecimalScale     = 12
)

var decimalName = fmt.Sprintf("decimal(%d,%d)", DecimalPrecision, DecimalScale)

// scalarNames is the scalar type table: known scalar and columnar types mapped
// to engine scalar schema names. Built once at package init, never mutated.
//
// The engine has no unsigned widths, so unsigned integers widen to the next
// signed name that can hold them.
var scalarNames = map[reflect.Type]string{
	reflect.TypeFor[string]():         "string",
	reflect.TypeFor[[]byte]():         "binary",
	reflect.TypeFor[bool]():           "boolean",
	reflect.TypeFor[float64]():        "double",
	reflect.TypeFor[float32]():        "float",
	reflect.TypeFor[int8]():           "byte",
	reflect.TypeFor[int16]():          "short",
	reflect.TypeFor[int32]():          "integer",
	reflect.TypeFor[int64]():          "long",
	reflect.TypeFor[uint8]():          "short",
	reflect.TypeFor[uint16]():         "integer",
	reflect.TypeFor[uint32]():         "long",
	reflect.TypeFor[decimal128.Num](): decimalName,

	// Columnar containers resolve to the scalar name of their logical
	// element type, so function result types resolve directly.
	reflect.TypeFor[*array.String]():     "string",
	reflect.TypeFor[*array.Binary]():     "binary",
	reflect.TypeFor[*array.Boolean]():    "boolean",
	reflect.TypeFor[*array.Float64]():    "double",
	reflect.TypeFor[*array.Float32]():    "float",
	reflect.TypeFor[*array.Int8]():       "byte",
	reflect.TypeFor[*array.Int16]():      "short",
	reflect.TypeFor[*array.Int32]():      "integer",
	reflect.TypeFor[*array.Int64]():      "long",
	reflect.TypeFor[*array.Uint8]():      "short",
	reflect.TypeFor[*array.Uint16]():     "integer",
	reflect.TypeFor[*array.Uint32]():     "long",
	reflect.TypeFor[*array.Decimal128](): decimalName,
}

// ScalarName returns the engine scalar name for t if t is in the scalar type table.
func ScalarName(t reflect.Type) (string, bool) {
	name, ok := scalarNames[t]
	return name, ok
}

// TableTypes returns every type in the scalar type table.
func TableTypes() []reflect.Type {
	out := make([]reflect.Type, 0, len(scalarNames))
	for t := range scalarNames {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// Vocabulary returns the scalar wire vocabulary, sorted and deduplicated.
func Vocabulary() []string {
	seen := make(map[string]struct{}, len(scalarNames))
	for _, name := range scalarNames {
		seen[name] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
