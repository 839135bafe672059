package vals

import (
	"github.com/gotmpl/value/pkg/num"
)

// Ordering relationship between two values.
type Ordering = num.Ordering

// Possible Ordering values.
const (
	CmpLess         = num.CmpLess
	CmpEqual        = num.CmpEqual
	CmpMore         = num.CmpMore
	CmpUncomparable = num.CmpUncomparable
)

// Cmp compares two values and returns the ordering relationship between them.
//
//   - Nil equals Nil and NoValue equals NoValue.
//   - Bools are ordered false < true.
//   - Strings are ordered byte-wise, which for UTF-8 is code point order.
//   - Numbers are ordered by their mathematical value, see [num.Cmp].
//   - Arrays and maps are equal when they have equal elements, and are
//     otherwise uncomparable; they are never ordered.
//   - Objects and functions are equal when they are the same instance, and
//     are otherwise uncomparable.
//   - Values of different kinds are always uncomparable. In particular,
//     bools are never treated as numbers, nor numbers as strings.
//
// CmpUncomparable is not the same as "not equal": callers decide how to
// report it.
func Cmp(a, b Value) Ordering {
	switch a := a.data.(type) {
	case nil:
		if b.data == nil {
			return CmpEqual
		}
	case noValue:
		if _, ok := b.data.(noValue); ok {
			return CmpEqual
		}
	case bool:
		if b, ok := b.data.(bool); ok {
			switch {
			case a == b:
				return CmpEqual
			//lint:ignore S1002 using booleans as values, not conditions
			case a == false: // b == true is implicit
				return CmpLess
			default: // a == true && b == false
				return CmpMore
			}
		}
	case string:
		if b, ok := b.data.(string); ok {
			switch {
			case a == b:
				return CmpEqual
			case a < b:
				return CmpLess
			default: // a > b
				return CmpMore
			}
		}
	case num.Num:
		if b, ok := b.data.(num.Num); ok {
			return num.Cmp(a, b)
		}
	case []Value:
		if b, ok := b.data.([]Value); ok && equalArray(a, b) {
			return CmpEqual
		}
	case map[string]Value:
		if b, ok := b.data.(map[string]Value); ok && equalMap(a, b) {
			return CmpEqual
		}
	case *objectRef:
		if b, ok := b.data.(*objectRef); ok && sameObject(a, b) {
			return CmpEqual
		}
	case *functionRef:
		if b, ok := b.data.(*functionRef); ok && sameFunction(a, b) {
			return CmpEqual
		}
	}
	return CmpUncomparable
}

// Equal returns whether two values are equal, that is whether Cmp returns
// CmpEqual. Two equal values have the same hash.
func Equal(a, b Value) bool {
	return Cmp(a, b) == CmpEqual
}

func equalArray(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalMap(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !Equal(va, vb) {
			return false
		}
	}
	return true
}
