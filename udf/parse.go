package udf

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"column-bridge/utils"
)

// MinArity and MaxArity bound the supported vector function arity.
const (
	MinArity = 1
	MaxArity = 10
)

var (
	ErrNotAFunction = errors.New("provided vector function is not a function")
	ErrVariadicFunc = errors.New("vector functions cannot be variadic")
	ErrArityRange   = errors.New("vector functions take between 1 and 10 inputs")
	ErrResultShape  = errors.New("vector functions must return exactly one columnar result")
	ErrNotColumnar  = errors.New("vector function parameters and result must be columnar containers")
)

var columnType = reflect.TypeFor[Column]()

// VectorFunc describes a parsed vector function: its input and result types
// plus the defining package alias and name.
type VectorFunc struct {
	In           []reflect.Type
	Out          reflect.Type
	PackageAlias string
	Name         string
}

// Arity returns the number of inputs.
func (f VectorFunc) Arity() int {
	return len(f.In)
}

// Parse inspects the provided function and returns its VectorFunc description.
//
// Accepted shape: func(c1 C1, ..., ck Ck) R with MinArity <= k <= MaxArity,
// where every Ci and R satisfy the columnar container capability.
func Parse(fn any) (VectorFunc, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return VectorFunc{}, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.IsVariadic() {
		return VectorFunc{}, ErrVariadicFunc
	}

	if !utils.IsInRange(MinArity, fnType.NumIn(), MaxArity) {
		return VectorFunc{}, fmt.Errorf("%w, got %d", ErrArityRange, fnType.NumIn())
	}

	if fnType.NumOut() != 1 {
		return VectorFunc{}, ErrResultShape
	}

	in := make([]reflect.Type, fnType.NumIn())
	for i := range in {
		if !fnType.In(i).Implements(columnType) {
			return VectorFunc{}, fmt.Errorf("%w: parameter %d is %s", ErrNotColumnar, i, fnType.In(i))
		}

		in[i] = fnType.In(i)
	}

	out := fnType.Out(0)
	if !out.Implements(columnType) {
		return VectorFunc{}, fmt.Errorf("%w: result is %s", ErrNotColumnar, out)
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	return VectorFunc{
		In:           in,
		Out:          out,
		Name:         name,
		PackageAlias: utils.Second(path.Split(alias)),
	}, nil
}
