package vals

import (
	"reflect"

	"github.com/gotmpl/value/pkg/hash"
	"github.com/gotmpl/value/pkg/num"
)

// Hash returns the 32-bit hash of a value. Equal values have the same hash;
// in particular numbers hash by their mathematical value, and maps hash the
// same regardless of iteration order.
func Hash(v Value) uint32 {
	switch data := v.data.(type) {
	case nil:
		return 0
	case noValue:
		return 1
	case bool:
		return hash.Bool(data)
	case string:
		return hash.String(data)
	case num.Num:
		return num.Hash(data)
	case []Value:
		h := hash.DJBInit
		for _, e := range data {
			h = hash.DJBCombine(h, Hash(e))
		}
		return h
	case map[string]Value:
		var h uint32
		for k, e := range data {
			h = hash.Unordered(h, hash.DJB(hash.String(k), Hash(e)))
		}
		return h
	case *objectRef:
		return hashInstance(data, hostOf(data.obj))
	case *functionRef:
		return hashInstance(data, data.fn)
	default:
		panic("unreachable")
	}
}

// hashInstance hashes a host instance consistently with sameInstance: by
// address for pointer-like hosts, and by the handle's address otherwise.
func hashInstance(ref, instance any) uint32 {
	rv := reflect.ValueOf(instance)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer, reflect.Slice:
		return hash.UIntPtr(rv.Pointer())
	}
	return hash.UIntPtr(reflect.ValueOf(ref).Pointer())
}
