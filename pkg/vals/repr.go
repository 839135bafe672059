package vals

import (
	"math"
	"strconv"
	"strings"

	"github.com/gotmpl/value/pkg/num"
)

// NoPretty can be passed to Repr to suppress pretty-printing.
const NoPretty = math.MinInt32

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents a Value. The string is either a
	// literal of that Value that is preferably equal to it (like `[1, 2]`
	// for an array), or a string enclosed in "<>" (like `<object>`).
	//
	// If indent is at least 0, it should be pretty-printed with the current
	// indentation level of indent; the indent of the first line has already
	// been written and shall not be written in Repr. The returned string
	// should never contain a trailing newline.
	Repr(indent int) string
}

// ReprPlain is like Repr, but without pretty-printing.
func ReprPlain(v Value) string {
	return Repr(v, NoPretty)
}

// Repr returns the debug representation of a value, using indent as the
// initial level of indentation. Unlike ToString, strings are quoted and the
// kind of number is visible: floats with an integral value carry a ".0"
// suffix. Maps list their keys in sorted order.
func Repr(v Value, indent int) string {
	switch data := v.data.(type) {
	case nil:
		return "nil"
	case noValue:
		return NoValueText
	case bool:
		return strconv.FormatBool(data)
	case string:
		return quote(data)
	case num.Num:
		return reprNum(data)
	case []Value:
		b := NewListReprBuilder(indent)
		for _, e := range data {
			b.WriteElem(Repr(e, indent+1))
		}
		return b.String()
	case map[string]Value:
		b := NewMapReprBuilder(indent)
		for _, k := range sortedKeys(data) {
			b.WritePair(quote(k), Repr(data[k], indent+1))
		}
		return b.String()
	case *objectRef:
		if r, ok := data.obj.(Reprer); ok {
			return r.Repr(indent)
		}
		return ObjectText
	case *functionRef:
		if r, ok := data.fn.(Reprer); ok {
			return r.Repr(indent)
		}
		return FunctionText
	default:
		panic("unreachable")
	}
}

func reprNum(n num.Num) string {
	s := n.String()
	if n.Kind() == num.Float && !strings.ContainsAny(s, ".eIN") {
		return s + ".0"
	}
	return s
}

func quote(s string) string {
	return strconv.Quote(s)
}
