package num

import (
	"math"
	"strconv"
	"strings"
)

// String returns the canonical text of n: plain decimal for integers, and the
// shortest decimal that parses back to the same float64 for floats.
func (n Num) String() string {
	switch n.kind {
	case Int:
		return strconv.FormatInt(n.rawInt(), 10)
	case Uint:
		return strconv.FormatUint(n.rawUint(), 10)
	default:
		return formatFloat64(n.rawFloat())
	}
}

func formatFloat64(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// "NaN", "+Inf" or "-Inf".
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	// The 'g' format switches to scientific notation too eagerly (1234567 is
	// printed as 1.234567e+06). Use plain notation unless the number is a
	// long run of trailing zeros or starts with many leading zeros after the
	// decimal point.
	s := strconv.FormatFloat(f, 'f', -1, 64)
	abs := strings.TrimPrefix(s, "-")
	noPoint := !strings.ContainsRune(abs, '.')
	if (noPoint && len(abs) > 14 && abs[len(abs)-1] == '0') ||
		strings.HasPrefix(abs, "0.0000") {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return s
}
