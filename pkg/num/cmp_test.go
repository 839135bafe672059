package num

import (
	"math"
	"testing"

	"github.com/gotmpl/value/pkg/tt"
)

func TestCmp(t *testing.T) {
	nan := FromFloat64(math.NaN())
	tt.Test(t, Cmp,
		// Same kinds.
		Args(FromInt64(1), FromInt64(2)).Rets(CmpLess),
		Args(FromInt64(2), FromInt64(2)).Rets(CmpEqual),
		Args(FromUint64(3), FromUint64(2)).Rets(CmpMore),
		Args(FromFloat64(1.5), FromFloat64(2.5)).Rets(CmpLess),
		Args(FromFloat64(0), FromFloat64(math.Copysign(0, -1))).Rets(CmpEqual),
		Args(FromFloat64(math.Inf(1)), FromFloat64(math.Inf(1))).Rets(CmpEqual),

		// int and uint.
		Args(FromInt64(-1), FromUint64(0)).Rets(CmpLess),
		Args(FromUint64(0), FromInt64(-1)).Rets(CmpMore),
		Args(FromInt64(-1), FromUint64(math.MaxUint64)).Rets(CmpLess),
		Args(FromInt64(5), FromUint64(5)).Rets(CmpEqual),
		Args(FromUint64(math.MaxInt64+1), FromInt64(math.MaxInt64)).Rets(CmpMore),

		// int and float.
		Args(FromInt64(5), FromFloat64(5)).Rets(CmpEqual),
		Args(FromFloat64(5), FromInt64(5)).Rets(CmpEqual),
		Args(FromInt64(5), FromFloat64(5.5)).Rets(CmpLess),
		Args(FromInt64(-5), FromFloat64(-5.5)).Rets(CmpMore),
		Args(FromFloat64(-5.5), FromInt64(-5)).Rets(CmpLess),
		Args(FromInt64(math.MaxInt64), FromFloat64(twoTo63)).Rets(CmpLess),
		Args(FromInt64(math.MinInt64), FromFloat64(-twoTo63)).Rets(CmpEqual),
		Args(FromInt64(math.MinInt64), FromFloat64(math.Inf(-1))).Rets(CmpMore),
		Args(FromInt64(1<<53+1), FromFloat64(1<<53)).Rets(CmpMore),

		// uint and float.
		Args(FromUint64(1<<63+1), FromFloat64(twoTo63)).Rets(CmpMore),
		Args(FromFloat64(twoTo63), FromUint64(1<<63+1)).Rets(CmpLess),
		Args(FromUint64(1<<63), FromFloat64(twoTo63)).Rets(CmpEqual),
		Args(FromUint64(math.MaxUint64), FromFloat64(twoTo64)).Rets(CmpLess),
		Args(FromUint64(0), FromFloat64(-0.5)).Rets(CmpMore),
		Args(FromUint64(0), FromFloat64(0.5)).Rets(CmpLess),
		Args(FromUint64(7), FromFloat64(math.Inf(1))).Rets(CmpLess),

		// NaN.
		Args(nan, nan).Rets(CmpUncomparable),
		Args(nan, FromFloat64(1)).Rets(CmpUncomparable),
		Args(FromInt64(1), nan).Rets(CmpUncomparable),
		Args(nan, FromUint64(1)).Rets(CmpUncomparable),
	)
}

func TestCmp_Antisymmetric(t *testing.T) {
	nums := []Num{
		FromInt64(math.MinInt64), FromInt64(-1), FromInt64(0), FromInt64(7),
		FromInt64(math.MaxInt64), FromUint64(0), FromUint64(7),
		FromUint64(1 << 63), FromUint64(math.MaxUint64),
		FromFloat64(-twoTo63), FromFloat64(-0.5), FromFloat64(0), FromFloat64(7),
		FromFloat64(7.25), FromFloat64(twoTo63), FromFloat64(twoTo64),
		FromFloat64(math.Inf(1)), FromFloat64(math.Inf(-1)),
		FromFloat64(math.NaN()),
	}
	for _, a := range nums {
		for _, b := range nums {
			if ab, ba := Cmp(a, b), Cmp(b, a); ab != ba.Reverse() {
				t.Errorf("Cmp(%v, %v) = %v, but Cmp(%v, %v) = %v", a, b, ab, b, a, ba)
			}
			if Cmp(a, b) == CmpEqual && Hash(a) != Hash(b) {
				t.Errorf("%v and %v are equal, but hash to %v and %v", a, b, Hash(a), Hash(b))
			}
		}
	}
}

func TestOrderingString(t *testing.T) {
	tt.Test(t, Ordering.String,
		Args(CmpLess).Rets("less"),
		Args(CmpEqual).Rets("equal"),
		Args(CmpMore).Rets("more"),
		Args(CmpUncomparable).Rets("uncomparable"),
		Args(Ordering(9)).Rets("invalid"),
	)
}

func TestHash(t *testing.T) {
	five := Hash(FromInt64(5))
	tt.Test(t, Hash,
		Args(FromUint64(5)).Rets(five),
		Args(FromFloat64(5)).Rets(five),
		Args(FromFloat64(-1)).Rets(Hash(FromInt64(-1))),
		Args(FromFloat64(twoTo63)).Rets(Hash(FromUint64(1<<63))),
		Args(FromFloat64(math.Copysign(0, -1))).Rets(Hash(FromInt64(0))),
	)
}

func TestEqual(t *testing.T) {
	tt.Test(t, Num.Equal,
		Args(FromInt64(5), FromFloat64(5)).Rets(true),
		Args(FromInt64(5), FromUint64(6)).Rets(false),
		Args(FromFloat64(math.NaN()), FromFloat64(math.NaN())).Rets(false),
	)
}
