package schema_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"column-bridge/schema"
)

func ExampleShape() {
	fmt.Println(schema.Shape(reflect.TypeFor[map[string]int64]()))
	fmt.Println(schema.Shape(reflect.TypeFor[[]string]()))
	fmt.Println(schema.Shape(reflect.TypeFor[int32]()))
	fmt.Println(schema.Shape(reflect.TypeFor[[]byte]()))
	fmt.Println(schema.Shape(reflect.TypeFor[struct{}]()))
	// Output:
	// map
	// sequence
	// scalar
	// scalar
	// unknown
}

func TestMapShape(t *testing.T) {
	t.Parallel()

	key, value, ok := schema.MapShape(reflect.TypeFor[map[int32][]string]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[int32](), key)
	assert.Equal(t, reflect.TypeFor[[]string](), value)

	_, _, ok = schema.MapShape(reflect.TypeFor[[]string]())
	assert.False(t, ok)
}

func TestSeqShape(t *testing.T) {
	t.Parallel()

	elem, ok := schema.SeqShape(reflect.TypeFor[[][]int64]())
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[[]int64](), elem)

	// Binary is a scalar table hit, never a sequence.
	_, ok = schema.SeqShape(reflect.TypeFor[[]byte]())
	assert.False(t, ok)

	_, ok = schema.SeqShape(reflect.TypeFor[map[string]string]())
	assert.False(t, ok)
}

func TestNullable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[*int32](), true},
		{reflect.TypeFor[[]string](), true},
		{reflect.TypeFor[map[string]bool](), true},
		{reflect.TypeFor[any](), true},
		{reflect.TypeFor[int64](), false},
		{reflect.TypeFor[string](), false},
		{reflect.TypeFor[struct{}](), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, schema.Nullable(tt.typ), "Nullable(%s)", tt.typ)
	}
}
