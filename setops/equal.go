package setops

import (
	"reflect"
	"runtime"
)

// Equal reports whether a and b are structurally equal.
//
// Rules, in order:
//   - nil on either side: equal only when both are nil.
//   - different concrete types: never equal.
//   - pointers: equal when they point at the same address, otherwise
//     compared by their pointees.
//   - functions: compared by their runtime name, so two references to the
//     same declared function (or closures over the same literal) are equal
//     while distinct functions are not. Function identity in Go is not
//     otherwise observable; see the package documentation for the
//     trade-offs of name-based comparison.
//   - maps: equal key sets (order-independent), then per-key recursion.
//   - slices, arrays, structs: element-wise / field-wise recursion. A nil
//     slice is not equal to an empty one, matching [reflect.DeepEqual].
//   - everything else: the language's == semantics.
//
// Equal never panics on non-comparable inputs.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return valueEqual(reflect.ValueOf(a), reflect.ValueOf(b))
}

func valueEqual(va, vb reflect.Value) bool {
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return funcName(va) == funcName(vb)
	case reflect.Pointer:
		if va.Pointer() == vb.Pointer() {
			return true
		}
		if va.IsNil() || vb.IsNil() {
			return false
		}
		return valueEqual(va.Elem(), vb.Elem())
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return valueEqual(va.Elem(), vb.Elem())
	case reflect.Slice:
		if va.IsNil() != vb.IsNil() {
			return false
		}
		return sequenceEqual(va, vb)
	case reflect.Array:
		return sequenceEqual(va, vb)
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !valueEqual(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !valueEqual(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	default:
		return va.Equal(vb)
	}
}

func sequenceEqual(va, vb reflect.Value) bool {
	if va.Len() != vb.Len() {
		return false
	}
	for i := 0; i < va.Len(); i++ {
		if !valueEqual(va.Index(i), vb.Index(i)) {
			return false
		}
	}
	return true
}

func funcName(v reflect.Value) string {
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	return fn.Name()
}
