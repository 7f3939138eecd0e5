package schema_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"column-bridge/schema"
)

func TestResolveMap(t *testing.T) {
	t.Parallel()

	desc, err := schema.ResolveFor[map[string]int32]()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"map","keyType":"string","valueType":"integer","valueContainsNull":false}`, desc)
}

func TestResolveMapNullableValue(t *testing.T) {
	t.Parallel()

	desc, err := schema.ResolveFor[map[string]*int32]()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"map","keyType":"string","valueType":"integer","valueContainsNull":true}`, desc)
}

func TestResolveNestedSequence(t *testing.T) {
	t.Parallel()

	desc, err := schema.ResolveFor[[][]string]()
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"array","elementType":{"type":"array","elementType":"string","containsNull":false},"containsNull":true}`,
		desc)
}

func TestResolveSequenceOfNullableScalars(t *testing.T) {
	t.Parallel()

	desc, err := schema.ResolveFor[[]*int64]()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"array","elementType":"long","containsNull":true}`, desc)
}

func TestResolveMapOfBinaryValues(t *testing.T) {
	t.Parallel()

	desc, err := schema.ResolveFor[map[int64][]byte]()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"map","keyType":"long","valueType":"binary","valueContainsNull":true}`, desc)
}

func TestResolvePointerStrip(t *testing.T) {
	t.Parallel()

	desc, err := schema.ResolveFor[**int64]()
	require.NoError(t, err)
	assert.Equal(t, `"long"`, desc)
}

type opaque struct{}

func TestResolveUnsupported(t *testing.T) {
	t.Parallel()

	_, err := schema.ResolveFor[opaque]()
	require.Error(t, err)

	var unsupported *schema.UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, reflect.TypeFor[opaque](), unsupported.Type)
	assert.Contains(t, err.Error(), "opaque")
}

func TestResolveUnsupportedUnnamed(t *testing.T) {
	t.Parallel()

	_, err := schema.ResolveFor[chan int]()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chan int")
}

func TestResolveUnsupportedNestedValue(t *testing.T) {
	t.Parallel()

	// The failure propagates out of the recursion naming the leaf type.
	_, err := schema.ResolveFor[map[string]opaque]()
	require.Error(t, err)

	var unsupported *schema.UnsupportedTypeError
	assert.True(t, errors.As(err, &unsupported))
	assert.Contains(t, err.Error(), "opaque")
}

func TestResolveIdempotent(t *testing.T) {
	t.Parallel()

	first, err := schema.ResolveFor[map[string][]*float64]()
	require.NoError(t, err)

	second, err := schema.ResolveFor[map[string][]*float64]()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMapPrecedesSequence(t *testing.T) {
	t.Parallel()

	// A map-shaped type also satisfies generic iteration over its entries;
	// classification must still report it as a map.
	assert.Equal(t, schema.ShapeMap, schema.Shape(reflect.TypeFor[map[string][]string]()))

	desc, err := schema.ResolveFor[map[string][]string]()
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"map","keyType":"string","valueType":{"type":"array","elementType":"string","containsNull":false},"valueContainsNull":true}`,
		desc)
}
