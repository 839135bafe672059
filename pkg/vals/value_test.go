package vals

import (
	"testing"

	. "github.com/gotmpl/value/pkg/tt"
)

func TestKind(t *testing.T) {
	Test(t, KindOf,
		Args(Value{}).Rets(KindNil),
		Args(Nil()).Rets(KindNil),
		Args(NoValue()).Rets(KindNoValue),
		Args(FromBool(true)).Rets(KindBool),
		Args(FromString("")).Rets(KindString),
		Args(FromUint8(0)).Rets(KindNumber),
		Args(MakeArray()).Rets(KindArray),
		Args(MakeMap()).Rets(KindMap),
		Args(FromObject(&host{})).Rets(KindObject),
		Args(FromFunc(func([]Value) (Value, error) { return Nil(), nil })).Rets(KindFunction),
	)
	Test(t, Kind.String,
		Args(KindNil).Rets("nil"),
		Args(KindNoValue).Rets("no value"),
		Args(KindFunction).Rets("function"),
		Args(Kind(100)).Rets("invalid"),
	)
}

func TestIsNil(t *testing.T) {
	if !(Value{}).IsNil() || !Nil().IsNil() {
		t.Errorf("zero Value should be Nil")
	}
	if NoValue().IsNil() || FromBool(false).IsNil() {
		t.Errorf("NoValue and false should not be Nil")
	}
}

func TestErrors(t *testing.T) {
	Test(t, error.Error,
		Args(WrongType{"string", "number"}).Rets("wrong type: need string, got number"),
		Args(OutOfRange{What: "int8", ValidLow: "-128", ValidHigh: "127", Actual: "200"}).
			Rets("out of range: int8 must be from -128 to 127, but is 200"),
		Args(OutOfRange{What: "index", Actual: "0"}).
			Rets("out of range: index has no valid value, but is 0"),
		Args(NoSuchKey{"a\"b"}).Rets(`no such key: "a\"b"`),
	)
}
