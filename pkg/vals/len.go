package vals

import (
	"unicode/utf8"
)

// Lener wraps the Len method. Objects implementing it report their own
// length.
type Lener interface {
	// Len computes the length of the receiver.
	Len() int
}

// Len returns the length of the value, or false if the value has no length.
// The length of a String is its number of code points, and the length of an
// Object without a Len method is its number of fields.
func Len(v Value) (int, bool) {
	switch data := v.data.(type) {
	case string:
		return utf8.RuneCountInString(data), true
	case []Value:
		return len(data), true
	case map[string]Value:
		return len(data), true
	case *objectRef:
		if l, ok := data.obj.(Lener); ok {
			return l.Len(), true
		}
		n := 0
		for range data.obj.FieldNames() {
			n++
		}
		return n, true
	}
	return 0, false
}
