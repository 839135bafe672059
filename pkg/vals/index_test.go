package vals

import (
	"math"
	"testing"

	. "github.com/gotmpl/value/pkg/tt"
)

var (
	arr3 = MakeArray(FromString("foo"), FromString("bar"), FromString("baz"))
	m2   = MakeMap("foo", "bar", "lorem", "ipsum")
)

func TestIndex(t *testing.T) {
	Test(t, Fn("Index", Index),
		// Arrays.
		Args(arr3, FromInt(0)).Rets(FromString("foo"), nil),
		Args(arr3, FromUint8(2)).Rets(FromString("baz"), nil),
		Args(arr3, FromFloat64(1)).Rets(FromString("bar"), nil),
		Args(arr3, FromInt(-1)).Rets(FromString("baz"), nil),
		Args(arr3, FromInt(-3)).Rets(FromString("foo"), nil),
		Args(arr3, FromInt(3)).Rets(Nil(), OutOfRange{
			What: "index", ValidLow: "-3", ValidHigh: "2", Actual: "3"}),
		Args(arr3, FromInt(-4)).Rets(Nil(), ErrorIs(ErrRange)),
		Args(arr3, FromUint64(math.MaxUint64)).Rets(Nil(), ErrorIs(ErrRange)),
		Args(MakeArray(), FromInt(0)).Rets(Nil(), OutOfRange{What: "index", Actual: "0"}),
		Args(arr3, FromFloat64(0.5)).Rets(Nil(), WrongType{"integer", "number"}),
		Args(arr3, FromString("0")).Rets(Nil(), WrongType{"integer", "string"}),

		// Strings.
		Args(FromString("abc"), FromInt(0)).Rets(FromString("a"), nil),
		Args(FromString("你好"), FromInt(1)).Rets(FromString("好"), nil),
		Args(FromString("你好"), FromInt(2)).Rets(Nil(), ErrorIs(ErrRange)),

		// Maps.
		Args(m2, FromString("foo")).Rets(FromString("bar"), nil),
		Args(m2, FromString("bad")).Rets(Nil(), NoSuchKey{"bad"}),
		Args(m2, FromInt(0)).Rets(Nil(), WrongType{"string", "number"}),

		// Others.
		Args(FromInt(1), FromInt(0)).Rets(Nil(), WrongType{"indexable value", "number"}),
		Args(Nil(), FromString("a")).Rets(Nil(), WrongType{"indexable value", "nil"}),
	)
}

func TestLen(t *testing.T) {
	Test(t, Len,
		Args(FromString("abc")).Rets(3, true),
		Args(FromString("你好")).Rets(2, true),
		Args(arr3).Rets(3, true),
		Args(m2).Rets(2, true),
		Args(FromInt(1)).Rets(0, false),
		Args(Nil()).Rets(0, false),
		Args(FromFunc(func([]Value) (Value, error) { return Nil(), nil })).Rets(0, false),
	)
}

func TestTruthy(t *testing.T) {
	Test(t, Truthy,
		Args(Nil()).Rets(false),
		Args(NoValue()).Rets(false),
		Args(FromBool(false)).Rets(false),
		Args(FromBool(true)).Rets(true),
		Args(FromString("")).Rets(false),
		Args(FromString("0")).Rets(true),
		Args(FromInt(0)).Rets(false),
		Args(FromUint64(0)).Rets(false),
		Args(FromFloat64(math.Copysign(0, -1))).Rets(false),
		Args(FromFloat64(math.NaN())).Rets(false),
		Args(FromFloat64(0.1)).Rets(true),
		Args(FromInt(-1)).Rets(true),
		Args(MakeArray()).Rets(false),
		Args(MakeArray(FromBool(false))).Rets(true),
		Args(MakeMap()).Rets(false),
		Args(m2).Rets(true),
		Args(FromObject(&host{})).Rets(true),
	)
}
