package vals

import (
	"math"
	"strconv"

	"github.com/gotmpl/value/pkg/num"
)

// Index indexes a value with the given key.
//
// Arrays and Strings are indexed with integers, and negative indices count
// from the end; indexing a String gives the code point at that position as a
// String. Maps and Objects are indexed with Strings. A missing key is
// reported as NoSuchKey and an index outside the sequence as OutOfRange.
func Index(v, key Value) (Value, error) {
	switch data := v.data.(type) {
	case []Value:
		i, err := convertIndex(key, len(data))
		if err != nil {
			return Value{}, err
		}
		return data[i], nil
	case string:
		runes := []rune(data)
		i, err := convertIndex(key, len(runes))
		if err != nil {
			return Value{}, err
		}
		return FromString(string(runes[i])), nil
	case map[string]Value:
		k, err := AsString(key)
		if err != nil {
			return Value{}, err
		}
		if e, ok := data[k]; ok {
			return e, nil
		}
		return Value{}, NoSuchKey{k}
	case *objectRef:
		k, err := AsString(key)
		if err != nil {
			return Value{}, err
		}
		if e, ok := data.obj.Field(k); ok {
			return e, nil
		}
		return Value{}, NoSuchKey{k}
	}
	return Value{}, WrongType{"indexable value", v.Kind().String()}
}

// convertIndex converts an index into a sequence of length n to a position
// in it.
func convertIndex(key Value, n int) (int, error) {
	i, err := toInt64(key, "index", math.MinInt64, math.MaxInt64)
	if err != nil {
		if _, ok := key.data.(num.Num); !ok {
			return 0, WrongType{"integer", key.Kind().String()}
		}
		return 0, err
	}
	if i < 0 {
		i += int64(n)
	}
	if i < 0 || i >= int64(n) {
		if n == 0 {
			return 0, OutOfRange{What: "index", Actual: ToString(key)}
		}
		return 0, OutOfRange{What: "index",
			ValidLow: strconv.Itoa(-n), ValidHigh: strconv.Itoa(n - 1), Actual: ToString(key)}
	}
	return int(i), nil
}
