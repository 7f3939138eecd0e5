package schema

import "reflect"

// ShapeEnum classifies the container capability of a type.
type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota
	ShapeScalar
	ShapeMap
	ShapeSequence

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// String returns a human-readable representation of the ShapeEnum.
func (s ShapeEnum) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeMap:
		return "map"
	case ShapeSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Shape reports the container capability of t.
//
// The map capability is tested before the sequence capability: a map-shaped
// type also satisfies generic iteration over its entries, and testing sequence
// first would misclassify it as an array.
func Shape(t reflect.Type) ShapeEnum {
	if t == nil {
		return ShapeUnknown
	}

	if _, ok := scalarNames[t]; ok {
		return ShapeScalar
	}

	switch t.Kind() {
	default:
		return ShapeUnknown
	case reflect.Map:
		return ShapeMap
	case reflect.Slice, reflect.Array:
		return ShapeSequence
	}
}

// MapShape returns the key and value type parameters of a map-like type.
func MapShape(t reflect.Type) (key, value reflect.Type, ok bool) {
	if Shape(t) != ShapeMap {
		return nil, nil, false
	}

	return t.Key(), t.Elem(), true
}

// SeqShape returns the element type parameter of a sequence-like type.
func SeqShape(t reflect.Type) (elem reflect.Type, ok bool) {
	if Shape(t) != ShapeSequence {
		return nil, false
	}

	return t.Elem(), true
}

// Nullable reports whether values of t can represent an absent value.
func Nullable(t reflect.Type) bool {
	if t == nil {
		return false
	}

	switch t.Kind() {
	default:
		return false
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	}
}
