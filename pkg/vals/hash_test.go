package vals

import (
	"testing"

	"github.com/gotmpl/value/pkg/hash"
	"github.com/gotmpl/value/pkg/num"
	. "github.com/gotmpl/value/pkg/tt"
)

func TestHash(t *testing.T) {
	Test(t, Hash,
		Args(Nil()).Rets(uint32(0)),
		Args(NoValue()).Rets(uint32(1)),
		Args(FromBool(false)).Rets(uint32(0)),
		Args(FromBool(true)).Rets(uint32(1)),
		Args(FromString("foo")).Rets(hash.String("foo")),
		Args(FromInt64(5)).Rets(num.Hash(num.FromInt64(5))),
		Args(FromFloat64(5)).Rets(num.Hash(num.FromInt64(5))),
		Args(MakeArray(FromString("foo"), FromString("bar"))).
			Rets(hash.DJB(hash.String("foo"), hash.String("bar"))),
		Args(MakeMap("foo", "bar")).
			Rets(hash.DJB(hash.String("foo"), hash.String("bar"))),
	)
}

func TestHash_MapIsOrderIndependent(t *testing.T) {
	m := map[string]Value{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		m[k] = FromString(k)
	}
	want := Hash(FromValueMap(m))
	for i := 0; i < 20; i++ {
		if got := Hash(FromValueMap(m)); got != want {
			t.Fatalf("Hash of the same map changed from %v to %v", want, got)
		}
	}
	if Hash(MakeMap("a", "b")) == Hash(MakeMap("b", "a")) {
		t.Errorf("swapping keys and values should change the hash")
	}
}

func TestHash_Identity(t *testing.T) {
	h := &host{"a"}
	TestValue(t, FromObject(h)).Equal(FromObject(h))

	fn := FromFunc(func([]Value) (Value, error) { return Nil(), nil })
	TestValue(t, fn).Hash(Hash(fn)).Equal(fn)
}
