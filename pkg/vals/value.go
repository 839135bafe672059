// Package vals contains the value type of the template engine, and basic
// operations on it.
//
// A Value holds one of a closed set of variants:
//
//   - Nil, the absence of a value;
//   - NoValue, a missing value (for instance a nil host pointer);
//   - Bool;
//   - String;
//   - Number, wrapping a [num.Num];
//   - Array, an ordered sequence of Values;
//   - Map, a mapping from strings to Values;
//   - Object, a shared handle to a host value implementing [Object];
//   - Function, a shared handle to a host value implementing [Function].
//
// Values are immutable. Arrays and maps are copied when a Value is built from
// them and when they are extracted again, so no two Values share mutable
// state; objects and functions are shared by reference.
//
// Values must be compared with [Equal] or [Cmp] rather than ==.
package vals

import (
	"github.com/gotmpl/value/pkg/num"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Possible Kind values. The zero Kind is KindNil.
const (
	KindNil Kind = iota
	KindNoValue
	KindBool
	KindString
	KindNumber
	KindArray
	KindMap
	KindObject
	KindFunction
)

var kindNames = [...]string{
	KindNil:      "nil",
	KindNoValue:  "no value",
	KindBool:     "bool",
	KindString:   "string",
	KindNumber:   "number",
	KindArray:    "array",
	KindMap:      "map",
	KindObject:   "object",
	KindFunction: "function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Value is a template value. The zero Value is Nil.
type Value struct {
	// One of nil, noValue, bool, string, num.Num, []Value, map[string]Value,
	// *objectRef and *functionRef.
	data any
}

type noValue struct{}

// Nil returns the Nil value. It is the same as the zero Value.
func Nil() Value { return Value{} }

// NoValue returns the NoValue value.
func NoValue() Value { return Value{noValue{}} }

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	switch v.data.(type) {
	case nil:
		return KindNil
	case noValue:
		return KindNoValue
	case bool:
		return KindBool
	case string:
		return KindString
	case num.Num:
		return KindNumber
	case []Value:
		return KindArray
	case map[string]Value:
		return KindMap
	case *objectRef:
		return KindObject
	case *functionRef:
		return KindFunction
	default:
		panic("unreachable")
	}
}

// Kind returns the kind of v. It is the same as v.Kind().
func KindOf(v Value) Kind { return v.Kind() }

// IsNil reports whether v is Nil.
func (v Value) IsNil() bool { return v.data == nil }

// Equal reports whether v and other are equal. It is the same as
// Equal(v, other), and makes Values usable with go-cmp.
func (v Value) Equal(other Value) bool { return Equal(v, other) }

// String returns the display text of v. It is the same as ToString(v).
func (v Value) String() string { return ToString(v) }

// GoString returns the debug representation of v, so that %#v prints
// something readable.
func (v Value) GoString() string { return ReprPlain(v) }
