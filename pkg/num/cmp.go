package num

import (
	"cmp"
	"math"

	"github.com/gotmpl/value/pkg/hash"
)

// Ordering relationship between two values.
type Ordering uint8

// Possible Ordering values.
const (
	CmpLess Ordering = iota
	CmpEqual
	CmpMore
	CmpUncomparable
)

func (o Ordering) String() string {
	switch o {
	case CmpLess:
		return "less"
	case CmpEqual:
		return "equal"
	case CmpMore:
		return "more"
	case CmpUncomparable:
		return "uncomparable"
	default:
		return "invalid"
	}
}

// Reverse returns the ordering seen from the other operand. CmpEqual and
// CmpUncomparable are their own reverse.
func (o Ordering) Reverse() Ordering {
	switch o {
	case CmpLess:
		return CmpMore
	case CmpMore:
		return CmpLess
	default:
		return o
	}
}

// Cmp compares two numbers by their mathematical value, regardless of their
// kinds. It returns CmpUncomparable iff either operand is NaN.
//
// Each pair of kinds is handled by its own rule:
//
//   - int and int, uint and uint, float and float: native comparison.
//   - int and uint: a negative int is less than every uint; otherwise both
//     compare as uint64.
//   - int or uint and float: the float is split into its integer and
//     fractional parts, and the integer part is compared with the integer
//     operand as an integer. The integer operand is never rounded to a
//     float, so large integers never compare equal to a nearby float.
func Cmp(a, b Num) Ordering {
	switch a.kind {
	case Int:
		switch b.kind {
		case Int:
			return compareOrdered(a.rawInt(), b.rawInt())
		case Uint:
			return compareIntUint(a.rawInt(), b.rawUint())
		case Float:
			return compareIntFloat(a.rawInt(), b.rawFloat())
		}
	case Uint:
		switch b.kind {
		case Int:
			return compareIntUint(b.rawInt(), a.rawUint()).Reverse()
		case Uint:
			return compareOrdered(a.rawUint(), b.rawUint())
		case Float:
			return compareUintFloat(a.rawUint(), b.rawFloat())
		}
	case Float:
		switch b.kind {
		case Int:
			return compareIntFloat(b.rawInt(), a.rawFloat()).Reverse()
		case Uint:
			return compareUintFloat(b.rawUint(), a.rawFloat()).Reverse()
		case Float:
			return compareFloat(a.rawFloat(), b.rawFloat())
		}
	}
	return CmpUncomparable
}

func compareOrdered[T cmp.Ordered](a, b T) Ordering {
	if a < b {
		return CmpLess
	} else if a > b {
		return CmpMore
	}
	return CmpEqual
}

func compareIntUint(i int64, u uint64) Ordering {
	if i < 0 {
		return CmpLess
	}
	return compareOrdered(uint64(i), u)
}

func compareIntFloat(i int64, f float64) Ordering {
	switch {
	case math.IsNaN(f):
		return CmpUncomparable
	case f >= twoTo63:
		return CmpLess
	case f < -twoTo63:
		return CmpMore
	}
	// f is now in [-2^63, 2^63), so its integer part fits in an int64.
	whole, frac := math.Modf(f)
	if o := compareOrdered(i, int64(whole)); o != CmpEqual {
		return o
	}
	return compareFrac(frac)
}

func compareUintFloat(u uint64, f float64) Ordering {
	switch {
	case math.IsNaN(f):
		return CmpUncomparable
	case f >= twoTo64:
		return CmpLess
	case f < 0:
		return CmpMore
	}
	whole, frac := math.Modf(f)
	if o := compareOrdered(u, uint64(whole)); o != CmpEqual {
		return o
	}
	return compareFrac(frac)
}

// compareFrac finishes comparing an integer with a float whose integer part
// equals it.
func compareFrac(frac float64) Ordering {
	switch {
	case frac > 0:
		return CmpLess
	case frac < 0:
		return CmpMore
	default:
		return CmpEqual
	}
}

func compareFloat(a, b float64) Ordering {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return CmpUncomparable
	case a < b:
		return CmpLess
	case a > b:
		return CmpMore
	default: // a == b
		return CmpEqual
	}
}

// Hash returns the hash of a number. Numbers that compare equal have the same
// hash: any integral value is hashed through its integer form, whatever kind
// it is stored as.
func Hash(n Num) uint32 {
	switch n.kind {
	case Int:
		return hash.Int64(n.rawInt())
	case Uint:
		return hash.UInt64(n.rawUint())
	default:
		f := n.rawFloat()
		if i, ok := floatToInt64(f); ok {
			return hash.Int64(i)
		}
		if u, ok := floatToUint64(f); ok {
			return hash.UInt64(u)
		}
		return hash.UInt64(math.Float64bits(f))
	}
}
