package vals

import (
	"slices"
	"strings"

	"github.com/gotmpl/value/pkg/num"
)

// Placeholders displayed for values that have no text of their own.
const (
	NilText      = "<nil>"
	NoValueText  = "<no value>"
	ObjectText   = "<object>"
	FunctionText = "<function>"
)

// ToString converts a value to the text a template renders for it. It never
// fails, and renders the same value the same way every time.
//
// Strings are rendered raw, numbers as by [num.Num.String], arrays as
// "[e1 e2]" and maps as "map[k1:v1 k2:v2]" with keys in sorted order. Objects
// and functions are rendered by their String method if they have one, or as a
// placeholder otherwise.
func ToString(v Value) string {
	switch data := v.data.(type) {
	case string:
		return data
	case num.Num:
		return data.String()
	}
	var sb strings.Builder
	writeString(&sb, v)
	return sb.String()
}

func writeString(sb *strings.Builder, v Value) {
	switch data := v.data.(type) {
	case nil:
		sb.WriteString(NilText)
	case noValue:
		sb.WriteString(NoValueText)
	case bool:
		if data {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case string:
		sb.WriteString(data)
	case num.Num:
		sb.WriteString(data.String())
	case []Value:
		sb.WriteByte('[')
		for i, e := range data {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeString(sb, e)
		}
		sb.WriteByte(']')
	case map[string]Value:
		sb.WriteString("map[")
		for i, k := range sortedKeys(data) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(k)
			sb.WriteByte(':')
			writeString(sb, data[k])
		}
		sb.WriteByte(']')
	case *objectRef:
		sb.WriteString(displayHost(data.obj, ObjectText))
	case *functionRef:
		sb.WriteString(displayHost(data.fn, FunctionText))
	}
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
