// Package num implements the numeric cell of template values.
//
// A Num holds exactly one of a signed 64-bit integer, an unsigned 64-bit
// integer or a 64-bit float, and remembers which one it was constructed
// with. Numbers of different kinds are never converted when stored; they are
// only brought to a common footing when compared or hashed, and that is done
// exactly, without going through a lossy float conversion.
package num

import (
	"math"
)

// Kind is the representation used by a Num.
type Kind uint8

// Possible Kind values.
const (
	Int Kind = iota
	Uint
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	default:
		return "invalid"
	}
}

// Num is a numeric cell. The zero value is the signed integer 0.
//
// Num is a small value type and should be passed by value. Two Nums
// constructed from the same kind and bits are identical under ==; use Cmp or
// the Equal method for numeric equality across kinds.
type Num struct {
	kind Kind
	bits uint64
}

// Limits used for exact conversions between integers and floats. Both are
// powers of two and thus exactly representable as float64.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = twoTo63 * 2
)

// FromInt64 makes a signed Num.
func FromInt64(i int64) Num { return Num{Int, uint64(i)} }

// FromUint64 makes an unsigned Num.
func FromUint64(u uint64) Num { return Num{Uint, u} }

// FromFloat64 makes a float Num.
func FromFloat64(f float64) Num { return Num{Float, math.Float64bits(f)} }

func FromInt(i int) Num     { return FromInt64(int64(i)) }
func FromInt8(i int8) Num   { return FromInt64(int64(i)) }
func FromInt16(i int16) Num { return FromInt64(int64(i)) }
func FromInt32(i int32) Num { return FromInt64(int64(i)) }

func FromUint(u uint) Num       { return FromUint64(uint64(u)) }
func FromUint8(u uint8) Num     { return FromUint64(uint64(u)) }
func FromUint16(u uint16) Num   { return FromUint64(uint64(u)) }
func FromUint32(u uint32) Num   { return FromUint64(uint64(u)) }
func FromUintptr(u uintptr) Num { return FromUint64(uint64(u)) }

// FromFloat32 makes a float Num. Every float32 is exactly representable as a
// float64, so no information is lost.
func FromFloat32(f float32) Num { return FromFloat64(float64(f)) }

// Kind returns the representation of n.
func (n Num) Kind() Kind { return n.kind }

func (n Num) rawInt() int64     { return int64(n.bits) }
func (n Num) rawUint() uint64   { return n.bits }
func (n Num) rawFloat() float64 { return math.Float64frombits(n.bits) }

// Int64 returns n as an int64 and whether the conversion is exact. Floats
// convert only when they are integral and in range.
func (n Num) Int64() (int64, bool) {
	switch n.kind {
	case Int:
		return n.rawInt(), true
	case Uint:
		u := n.rawUint()
		return int64(u), u <= math.MaxInt64
	default:
		return floatToInt64(n.rawFloat())
	}
}

// Uint64 returns n as a uint64 and whether the conversion is exact.
func (n Num) Uint64() (uint64, bool) {
	switch n.kind {
	case Int:
		i := n.rawInt()
		return uint64(i), i >= 0
	case Uint:
		return n.rawUint(), true
	default:
		return floatToUint64(n.rawFloat())
	}
}

// Float64 returns n as a float64 and whether the conversion is exact. Floats
// always convert; integers only when the float64 holds exactly the same
// value.
func (n Num) Float64() (float64, bool) {
	switch n.kind {
	case Int:
		return int64ToFloat(n.rawInt())
	case Uint:
		return uint64ToFloat(n.rawUint())
	default:
		return n.rawFloat(), true
	}
}

// IsIntegral reports whether n has no fractional part. Integers are always
// integral; infinities and NaN are not.
func (n Num) IsIntegral() bool {
	if n.kind != Float {
		return true
	}
	f := n.rawFloat()
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// IsNaN reports whether n is a float NaN.
func (n Num) IsNaN() bool {
	return n.kind == Float && math.IsNaN(n.rawFloat())
}

// IsZero reports whether n is numerically zero, including -0.0.
func (n Num) IsZero() bool {
	if n.kind == Float {
		return n.rawFloat() == 0
	}
	return n.bits == 0
}

// Equal reports whether n and m are numerically equal. It is a shorthand for
// Cmp(n, m) == CmpEqual.
func (n Num) Equal(m Num) bool {
	return Cmp(n, m) == CmpEqual
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || f < -twoTo63 || f >= twoTo63 || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func floatToUint64(f float64) (uint64, bool) {
	if math.IsNaN(f) || f < 0 || f >= twoTo64 || f != math.Trunc(f) {
		return 0, false
	}
	return uint64(f), true
}

func int64ToFloat(i int64) (float64, bool) {
	f := float64(i)
	// Values close to MaxInt64 round up to 2^63, which does not convert back.
	if f >= twoTo63 {
		return f, false
	}
	return f, int64(f) == i
}

func uint64ToFloat(u uint64) (float64, bool) {
	f := float64(u)
	if f >= twoTo64 {
		return f, false
	}
	return f, uint64(f) == u
}
