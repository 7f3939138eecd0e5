package registry_test

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"column-bridge/examples/udfs"
	"column-bridge/registry"
	"column-bridge/udf"
)

func int64Column(t *testing.T, values ...int64) *array.Int64 {
	t.Helper()

	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()

	b.AppendValues(values, nil)

	return b.NewInt64Array()
}

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	require.NoError(t, reg.Register("add_int64", udfs.AddInt64, udf.Wrap2(udfs.AddInt64)))
	require.NoError(t, reg.Register("upper", udfs.Upper, udf.Wrap1(udfs.Upper)))

	entry, err := reg.Lookup("add_int64")
	require.NoError(t, err)

	assert.Equal(t, "add_int64", entry.Name)
	assert.Equal(t, 2, entry.Adapter.Arity())
	assert.Equal(t, []string{`"long"`, `"long"`}, entry.ArgTypes)
	assert.Equal(t, `"long"`, entry.ReturnType)
	assert.Equal(t, "AddInt64", entry.Func.Name)

	out, err := entry.Adapter.Invoke([]udf.Column{
		int64Column(t, 1, 2, 3),
		int64Column(t, 10, 20, 30),
	})
	require.NoError(t, err)

	sum, ok := out.(*array.Int64)
	require.True(t, ok)
	assert.Equal(t, []int64{11, 22, 33}, sum.Int64Values())

	assert.Equal(t, []string{"add_int64", "upper"}, reg.Names())
}

func TestRegisterEmptyName(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	err := reg.Register("", udfs.Upper, udf.Wrap1(udfs.Upper))
	assert.ErrorIs(t, err, registry.ErrEmptyName)
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	require.NoError(t, reg.Register("upper", udfs.Upper, udf.Wrap1(udfs.Upper)))

	err := reg.Register("upper", udfs.Upper, udf.Wrap1(udfs.Upper))
	assert.ErrorIs(t, err, registry.ErrDuplicateName)
}

func TestRegisterArityMismatch(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	err := reg.Register("add_int64", udfs.AddInt64, udf.Wrap1(udfs.Upper))
	assert.ErrorIs(t, err, registry.ErrArityMismatch)
}

func TestRegisterNotAFunction(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	err := reg.Register("nope", 42, udf.Wrap1(udfs.Upper))
	assert.ErrorIs(t, err, udf.ErrNotAFunction)
}

func TestLookupSuggestions(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	require.NoError(t, reg.Register("add_int64", udfs.AddInt64, udf.Wrap2(udfs.AddInt64)))
	require.NoError(t, reg.Register("clamp_float64", udfs.ClampFloat64, udf.Wrap3(udfs.ClampFloat64)))

	_, err := reg.Lookup("ad_int64")
	require.Error(t, err)

	var unknown *registry.UnknownFunctionError
	require.True(t, errors.As(err, &unknown))

	assert.Equal(t, "ad_int64", unknown.Name)
	assert.Contains(t, unknown.Suggestions, "add_int64")
	assert.Contains(t, err.Error(), `did you mean "add_int64"`)
}

func TestLookupNoSuggestions(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)

	_, err := reg.Lookup("anything")
	require.Error(t, err)

	var unknown *registry.UnknownFunctionError
	require.True(t, errors.As(err, &unknown))
	assert.Empty(t, unknown.Suggestions)
	assert.Equal(t, `unknown vector function "anything"`, err.Error())
}

func TestConfusableDiagnostic(t *testing.T) {
	t.Parallel()

	reg := registry.New(nil)
	require.NoError(t, reg.Register("add_int64", udfs.AddInt64, udf.Wrap2(udfs.AddInt64)))
	require.NoError(t, reg.Register("AddInt64", udfs.AddInt64, udf.Wrap2(udfs.AddInt64)))

	diags := reg.Diagnostics()
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "confusable-name", diags.Warnings[0].Code)
	assert.Equal(t, "AddInt64", diags.Warnings[0].Function)
	assert.False(t, diags.HasErrors())
}
