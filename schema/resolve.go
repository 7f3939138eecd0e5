package schema

import (
	"fmt"
	"reflect"
	"strconv"
)

// UnsupportedTypeError is returned by Resolve for a type that matches neither
// the scalar table, the map capability, nor the sequence capability.
type UnsupportedTypeError struct {
	Type reflect.Type
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return "unsupported type: " + qualifiedName(e.Type)
}

// qualifiedName returns the fully qualified name of t, falling back to the
// structural representation for unnamed types.
func qualifiedName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	return t.String()
}

// Resolve translates t into the engine's JSON schema descriptor.
//
// Lookup order, first match wins:
//  1. exact scalar table hit -> quoted scalar name
//  2. map capability -> map descriptor over recursively resolved key/value
//  3. sequence capability -> array descriptor over the resolved element
//
// Pointer indirection contributes nil-ability only and is stripped before
// classification. Resolution is a pure function: the same type always yields
// byte-identical output or the identical failure.
func Resolve(t reflect.Type) (string, error) {
	if t == nil {
		return "", &UnsupportedTypeError{}
	}

	if name, ok := scalarNames[t]; ok {
		return strconv.Quote(name), nil
	}

	if t.Kind() == reflect.Ptr {
		return Resolve(t.Elem())
	}

	if key, value, ok := MapShape(t); ok {
		keyDesc, err := Resolve(key)
		if err != nil {
			return "", err
		}

		valueDesc, err := Resolve(value)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf(`{"type":"map","keyType":%s,"valueType":%s,"valueContainsNull":%t}`,
			keyDesc, valueDesc, Nullable(value)), nil
	}

	if elem, ok := SeqShape(t); ok {
		elemDesc, err := Resolve(elem)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf(`{"type":"array","elementType":%s,"containsNull":%t}`,
			elemDesc, Nullable(elem)), nil
	}

	return "", &UnsupportedTypeError{Type: t}
}

// ResolveFor resolves the schema descriptor of a compile-time known type.
func ResolveFor[T any]() (string, error) {
	return Resolve(reflect.TypeFor[T]())
}
