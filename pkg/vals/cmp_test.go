package vals

import (
	"iter"
	"math"
	"testing"

	. "github.com/gotmpl/value/pkg/tt"
)

type host struct{ name string }

func (*host) Field(name string) (Value, bool) { return Value{}, false }

func (*host) FieldNames() iter.Seq[string] { return func(func(string) bool) {} }

func TestCmp(t *testing.T) {
	nan := FromFloat64(math.NaN())
	Test(t, Cmp,
		Args(Nil(), Nil()).Rets(CmpEqual),
		Args(NoValue(), NoValue()).Rets(CmpEqual),
		Args(Nil(), NoValue()).Rets(CmpUncomparable),

		Args(FromBool(false), FromBool(true)).Rets(CmpLess),
		Args(FromBool(true), FromBool(false)).Rets(CmpMore),
		Args(FromBool(true), FromBool(true)).Rets(CmpEqual),

		Args(FromString("a"), FromString("b")).Rets(CmpLess),
		Args(FromString("b"), FromString("a")).Rets(CmpMore),
		Args(FromString("ab"), FromString("ab")).Rets(CmpEqual),
		Args(FromString(""), FromString("a")).Rets(CmpLess),
		// Byte-wise order is code point order.
		Args(FromString("ÿ"), FromString("Ā")).Rets(CmpLess),
		Args(FromString("z"), FromString("é")).Rets(CmpLess),

		Args(FromInt64(5), FromUint64(5)).Rets(CmpEqual),
		Args(FromInt64(5), FromFloat64(5)).Rets(CmpEqual),
		Args(FromInt64(-1), FromUint64(0)).Rets(CmpLess),
		Args(FromUint64(1<<63+1), FromFloat64(1<<63)).Rets(CmpMore),
		Args(nan, nan).Rets(CmpUncomparable),

		Args(MakeArray(FromInt64(1)), MakeArray(FromFloat64(1))).Rets(CmpEqual),
		Args(MakeArray(FromInt64(1)), MakeArray(FromInt64(2))).Rets(CmpUncomparable),
		Args(MakeArray(FromInt64(1)), MakeArray()).Rets(CmpUncomparable),
		Args(MakeArray(nan), MakeArray(nan)).Rets(CmpUncomparable),
		Args(MakeMap("a", 1), MakeMap("a", 1.0)).Rets(CmpEqual),
		Args(MakeMap("a", 1), MakeMap("b", 1)).Rets(CmpUncomparable),
		Args(MakeMap("a", 1), MakeMap("a", 1, "b", 2)).Rets(CmpUncomparable),

		// Cross-kind.
		Args(FromBool(true), FromInt64(1)).Rets(CmpUncomparable),
		Args(FromInt64(0), FromBool(false)).Rets(CmpUncomparable),
		Args(FromString("1"), FromInt64(1)).Rets(CmpUncomparable),
		Args(Nil(), FromBool(false)).Rets(CmpUncomparable),
		Args(MakeArray(), MakeMap()).Rets(CmpUncomparable),
	)
}

func TestCmp_Identity(t *testing.T) {
	h := &host{"a"}
	obj := FromObject(h)
	fn := FromFunc(func([]Value) (Value, error) { return Nil(), nil })
	Test(t, Cmp,
		Args(obj, obj).Rets(CmpEqual),
		Args(obj, FromObject(h)).Rets(CmpEqual),
		Args(obj, FromObject(&host{"a"})).Rets(CmpUncomparable),
		Args(fn, fn).Rets(CmpEqual),
		Args(fn, FromFunc(func([]Value) (Value, error) { return Nil(), nil })).
			Rets(CmpUncomparable),
		Args(obj, fn).Rets(CmpUncomparable),
	)
}

// Values covering every kind and the tricky numbers, used for checking
// properties that must hold for all pairs.
func sampleValues() []Value {
	h := &host{"a"}
	return []Value{
		Nil(), NoValue(), FromBool(false), FromBool(true),
		FromString(""), FromString("a"), FromString("é"),
		FromInt64(-1), FromInt64(0), FromInt64(5), FromInt64(math.MaxInt64),
		FromUint64(0), FromUint64(5), FromUint64(1<<63 + 1), FromUint64(math.MaxUint64),
		FromFloat64(-0.5), FromFloat64(0), FromFloat64(5), FromFloat64(1 << 63),
		FromFloat64(math.Inf(1)), FromFloat64(math.NaN()),
		MakeArray(), MakeArray(FromInt64(1)), MakeArray(FromFloat64(1)),
		MakeMap(), MakeMap("a", 1), MakeMap("a", 1.0),
		FromObject(h), FromObject(h), FromObject(&host{"b"}),
		FromFunc(func([]Value) (Value, error) { return Nil(), nil }),
	}
}

func TestCmp_Properties(t *testing.T) {
	values := sampleValues()
	for _, a := range values {
		if !isNaN(a) && Cmp(a, a) != CmpEqual {
			t.Errorf("Cmp(%#v, itself) = %v, want equal", a, Cmp(a, a))
		}
		for _, b := range values {
			ab, ba := Cmp(a, b), Cmp(b, a)
			if ab != ba.Reverse() {
				t.Errorf("Cmp(%#v, %#v) = %v, Cmp(%#v, %#v) = %v", a, b, ab, b, a, ba)
			}
			if ab == CmpEqual && Hash(a) != Hash(b) {
				t.Errorf("%#v and %#v are equal but hash to %v and %v", a, b, Hash(a), Hash(b))
			}
			if ab == CmpEqual && ToString(a) != ToString(b) && a.Kind() != KindNumber {
				t.Errorf("%#v and %#v are equal but display as %q and %q",
					a, b, ToString(a), ToString(b))
			}
			for _, c := range values {
				if ab == CmpLess && Cmp(b, c) == CmpLess && Cmp(a, c) != CmpLess {
					t.Errorf("%#v < %#v < %#v, but Cmp(%#v, %#v) = %v",
						a, b, c, a, c, Cmp(a, c))
				}
			}
		}
	}
}

func isNaN(v Value) bool {
	n, err := AsNum(v)
	return err == nil && n.IsNaN()
}

func TestEqual(t *testing.T) {
	TestValue(t, FromInt64(5)).Equal(FromUint64(5), FromFloat64(5), 5, 5.0).
		NotEqual(FromString("5"), FromFloat64(5.5), true)
	TestValue(t, Nil()).Equal(nil).NotEqual(NoValue(), false, 0, "")
	TestValue(t, MakeArray(FromString("a"))).Equal([]string{"a"}).NotEqual([]string{"b"})
	TestValue(t, MakeMap("x", MakeArray(FromInt64(1)))).
		Equal(map[string]any{"x": []float64{1}}).
		NotEqual(map[string]any{"x": []int{2}})

	if !FromInt64(1).Equal(FromFloat64(1)) {
		t.Errorf("Value.Equal(1, 1.0) = false, want true")
	}
}
