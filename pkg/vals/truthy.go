package vals

import (
	"github.com/gotmpl/value/pkg/num"
)

// Truther wraps the Truthy method. Objects and Functions implementing it
// decide their own truthiness.
type Truther interface {
	Truthy() bool
}

// Truthy returns the truthiness of a value, as used by template
// conditionals. Nil, NoValue, false, zero, NaN, and empty strings, arrays and
// maps are falsy. Objects and Functions are truthy unless they implement
// Truther.
func Truthy(v Value) bool {
	switch data := v.data.(type) {
	case nil, noValue:
		return false
	case bool:
		return data
	case string:
		return data != ""
	case num.Num:
		return !data.IsZero() && !data.IsNaN()
	case []Value:
		return len(data) > 0
	case map[string]Value:
		return len(data) > 0
	case *objectRef:
		return truthyHost(data.obj)
	case *functionRef:
		return truthyHost(data.fn)
	default:
		panic("unreachable")
	}
}

func truthyHost(v any) bool {
	if t, ok := v.(Truther); ok {
		return t.Truthy()
	}
	return true
}
