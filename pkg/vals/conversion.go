package vals

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gotmpl/value/pkg/num"
)

// Conversion between Go primitives and Values.
//
// Every Go primitive kind has a constructor FromX, which cannot fail, and an
// extractor AsX, which fails with a WrongType error when the Value is of the
// wrong kind and with an OutOfRange error when a number does not fit in the
// requested type. AsX(FromX(x)) always gives back x.
//
// Numbers keep the representation they were made with: FromInt8(-1) holds a
// signed integer, FromUint8(1) an unsigned one and FromFloat32(1) a float.
// Integer extractors accept any number with an integral value in range,
// whatever its representation.

// FromBool makes a Bool Value.
func FromBool(b bool) Value { return Value{b} }

// FromString makes a String Value.
func FromString(s string) Value { return Value{s} }

// FromBytes makes a String Value from a byte slice. The bytes are copied.
func FromBytes(b []byte) Value { return Value{string(b)} }

// FromRunes makes a String Value from a rune slice.
func FromRunes(r []rune) Value { return Value{string(r)} }

// FromNum makes a Number Value.
func FromNum(n num.Num) Value { return Value{n} }

func FromInt(i int) Value         { return FromNum(num.FromInt(i)) }
func FromInt8(i int8) Value       { return FromNum(num.FromInt8(i)) }
func FromInt16(i int16) Value     { return FromNum(num.FromInt16(i)) }
func FromInt32(i int32) Value     { return FromNum(num.FromInt32(i)) }
func FromInt64(i int64) Value     { return FromNum(num.FromInt64(i)) }
func FromUint(u uint) Value       { return FromNum(num.FromUint(u)) }
func FromUint8(u uint8) Value     { return FromNum(num.FromUint8(u)) }
func FromUint16(u uint16) Value   { return FromNum(num.FromUint16(u)) }
func FromUint32(u uint32) Value   { return FromNum(num.FromUint32(u)) }
func FromUint64(u uint64) Value   { return FromNum(num.FromUint64(u)) }
func FromUintptr(u uintptr) Value { return FromNum(num.FromUintptr(u)) }
func FromFloat32(f float32) Value { return FromNum(num.FromFloat32(f)) }
func FromFloat64(f float64) Value { return FromNum(num.FromFloat64(f)) }

// MakeArray makes an Array Value from the given elements.
func MakeArray(elems ...Value) Value {
	return FromValues(elems)
}

// FromValues makes an Array Value from a slice of Values. The slice is
// copied; a nil slice gives an empty Array.
func FromValues(elems []Value) Value {
	return Value{append(make([]Value, 0, len(elems)), elems...)}
}

// FromSlice makes an Array Value by converting each element of s with conv.
func FromSlice[T any](s []T, conv func(T) Value) Value {
	elems := make([]Value, len(s))
	for i, e := range s {
		elems[i] = conv(e)
	}
	return Value{elems}
}

// FromValueMap makes a Map Value from a Go map of Values. The map is copied;
// a nil map gives an empty Map.
func FromValueMap(m map[string]Value) Value {
	copied := make(map[string]Value, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return Value{copied}
}

// FromMap makes a Map Value by converting each value of m with conv.
func FromMap[T any](m map[string]T, conv func(T) Value) Value {
	converted := make(map[string]Value, len(m))
	for k, v := range m {
		converted[k] = conv(v)
	}
	return Value{converted}
}

// MakeMap makes a Map Value from arguments that are alternately keys and
// values. Arguments are converted with FromGo, and keys are then converted to
// strings with ToString. When a key appears more than once, the last value
// wins. A final key without a value is mapped to Nil.
func MakeMap(kvs ...any) Value {
	m := make(map[string]Value, (len(kvs)+1)/2)
	for i := 0; i < len(kvs); i += 2 {
		k := ToString(FromGo(kvs[i]))
		if i+1 < len(kvs) {
			m[k] = FromGo(kvs[i+1])
		} else {
			m[k] = Value{}
		}
	}
	return Value{m}
}

// AsBool extracts a bool.
func AsBool(v Value) (bool, error) {
	if b, ok := v.data.(bool); ok {
		return b, nil
	}
	return false, wrongType(KindBool, v)
}

// AsString extracts a string.
func AsString(v Value) (string, error) {
	if s, ok := v.data.(string); ok {
		return s, nil
	}
	return "", wrongType(KindString, v)
}

// AsBytes extracts the content of a String Value as a new byte slice.
func AsBytes(v Value) ([]byte, error) {
	s, err := AsString(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// AsRunes extracts the content of a String Value as a rune slice.
func AsRunes(v Value) ([]rune, error) {
	s, err := AsString(v)
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}

// AsNum extracts the numeric cell of a Number Value.
func AsNum(v Value) (num.Num, error) {
	if n, ok := v.data.(num.Num); ok {
		return n, nil
	}
	return num.Num{}, wrongType(KindNumber, v)
}

func AsInt(v Value) (int, error) {
	i, err := toInt64(v, "int", math.MinInt, math.MaxInt)
	return int(i), err
}

func AsInt8(v Value) (int8, error) {
	i, err := toInt64(v, "int8", math.MinInt8, math.MaxInt8)
	return int8(i), err
}

func AsInt16(v Value) (int16, error) {
	i, err := toInt64(v, "int16", math.MinInt16, math.MaxInt16)
	return int16(i), err
}

func AsInt32(v Value) (int32, error) {
	i, err := toInt64(v, "int32", math.MinInt32, math.MaxInt32)
	return int32(i), err
}

func AsInt64(v Value) (int64, error) {
	return toInt64(v, "int64", math.MinInt64, math.MaxInt64)
}

func AsUint(v Value) (uint, error) {
	u, err := toUint64(v, "uint", math.MaxUint)
	return uint(u), err
}

func AsUint8(v Value) (uint8, error) {
	u, err := toUint64(v, "uint8", math.MaxUint8)
	return uint8(u), err
}

func AsUint16(v Value) (uint16, error) {
	u, err := toUint64(v, "uint16", math.MaxUint16)
	return uint16(u), err
}

func AsUint32(v Value) (uint32, error) {
	u, err := toUint64(v, "uint32", math.MaxUint32)
	return uint32(u), err
}

func AsUint64(v Value) (uint64, error) {
	return toUint64(v, "uint64", math.MaxUint64)
}

func AsUintptr(v Value) (uintptr, error) {
	u, err := toUint64(v, "uintptr", uint64(^uintptr(0)))
	return uintptr(u), err
}

// AsFloat64 extracts a float64. Integers are converted to the nearest
// float64.
func AsFloat64(v Value) (float64, error) {
	n, err := AsNum(v)
	if err != nil {
		return 0, err
	}
	f, _ := n.Float64()
	return f, nil
}

// AsFloat32 extracts a float32. Finite numbers whose magnitude exceeds the
// largest float32 are out of range; infinities and NaN convert as is.
func AsFloat32(v Value) (float32, error) {
	f, err := AsFloat64(v)
	if err != nil {
		return 0, err
	}
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, OutOfRange{
			What:      "float32",
			ValidLow:  strconv.FormatFloat(-math.MaxFloat32, 'g', -1, 32),
			ValidHigh: strconv.FormatFloat(math.MaxFloat32, 'g', -1, 32),
			Actual:    ToString(v),
		}
	}
	return float32(f), nil
}

// AsArray extracts the elements of an Array Value as a new slice.
func AsArray(v Value) ([]Value, error) {
	if a, ok := v.data.([]Value); ok {
		return append([]Value(nil), a...), nil
	}
	return nil, wrongType(KindArray, v)
}

// AsMap extracts the entries of a Map Value as a new Go map.
func AsMap(v Value) (map[string]Value, error) {
	if m, ok := v.data.(map[string]Value); ok {
		copied := make(map[string]Value, len(m))
		for k, e := range m {
			copied[k] = e
		}
		return copied, nil
	}
	return nil, wrongType(KindMap, v)
}

// ToSlice extracts an Array Value into a slice, converting each element with
// elem. An element error is returned wrapped with the index of the element.
func ToSlice[T any](v Value, elem func(Value) (T, error)) ([]T, error) {
	a, ok := v.data.([]Value)
	if !ok {
		return nil, wrongType(KindArray, v)
	}
	s := make([]T, len(a))
	for i, e := range a {
		t, err := elem(e)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		s[i] = t
	}
	return s, nil
}

// ToMap extracts a Map Value, or the fields of an Object Value, into a Go map,
// converting each value with elem. A value error is returned wrapped with its
// key.
func ToMap[T any](v Value, elem func(Value) (T, error)) (map[string]T, error) {
	result := make(map[string]T)
	convert := func(k string, e Value) error {
		t, err := elem(e)
		if err != nil {
			return fmt.Errorf("key %s: %w", quote(k), err)
		}
		result[k] = t
		return nil
	}
	if err := eachEntry(v, convert); err != nil {
		return nil, err
	}
	return result, nil
}

// eachEntry calls f with each entry of a Map Value or each field of an Object
// Value, stopping at the first error.
func eachEntry(v Value, f func(k string, e Value) error) error {
	switch data := v.data.(type) {
	case map[string]Value:
		for k, e := range data {
			if err := f(k, e); err != nil {
				return err
			}
		}
		return nil
	case *objectRef:
		var err error
		IterateFields(data.obj, func(k string, e Value) bool {
			err = f(k, e)
			return err == nil
		})
		return err
	default:
		return wrongType(KindMap, v)
	}
}

func wrongType(want Kind, v Value) error {
	return WrongType{want.String(), v.Kind().String()}
}

// integral extracts the numeric cell of v, requiring it to have an integral
// value. Infinities are reported as out of range, NaN and fractional numbers
// as a type mismatch.
func integral(v Value, what, low, high string) (num.Num, error) {
	n, err := AsNum(v)
	if err != nil {
		return n, err
	}
	if n.IsIntegral() {
		return n, nil
	}
	if f, _ := n.Float64(); math.IsInf(f, 0) {
		return n, OutOfRange{What: what, ValidLow: low, ValidHigh: high, Actual: n.String()}
	}
	return n, WrongType{"integer", KindNumber.String()}
}

func toInt64(v Value, what string, low, high int64) (int64, error) {
	lowText, highText := strconv.FormatInt(low, 10), strconv.FormatInt(high, 10)
	n, err := integral(v, what, lowText, highText)
	if err != nil {
		return 0, err
	}
	i, ok := n.Int64()
	if !ok || i < low || i > high {
		return 0, OutOfRange{What: what, ValidLow: lowText, ValidHigh: highText, Actual: n.String()}
	}
	return i, nil
}

func toUint64(v Value, what string, high uint64) (uint64, error) {
	highText := strconv.FormatUint(high, 10)
	n, err := integral(v, what, "0", highText)
	if err != nil {
		return 0, err
	}
	u, ok := n.Uint64()
	if !ok || u > high {
		return 0, OutOfRange{What: what, ValidLow: "0", ValidHigh: highText, Actual: n.String()}
	}
	return u, nil
}
