package num

import (
	"strconv"
	"strings"
)

// Parse parses the text of a number literal.
//
// Integers are accepted in any base strconv understands with base 0
// (decimal, 0x, 0o, 0b, with underscores between digits). An integer becomes
// an Int when it fits in an int64 and a Uint when it only fits in a uint64;
// anything else that parses as a float becomes a Float. The special float
// words (inf, nan and their variants) are rejected, since template sources
// never spell them as literals.
func Parse(s string) (Num, bool) {
	if s == "" {
		return Num{}, false
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return FromInt64(i), true
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return FromUint64(u), true
	}
	if isSpecialFloatWord(s) {
		return Num{}, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat64(f), true
	}
	return Num{}, false
}

func isSpecialFloatWord(s string) bool {
	s = strings.ToLower(strings.TrimLeft(s, "+-"))
	return s == "inf" || s == "infinity" || s == "nan"
}
