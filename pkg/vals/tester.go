package vals

import (
	"reflect"
	"slices"
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v Value
}

// TestValue returns a Tester for the value. Arguments of the methods of
// Tester that are not Values are converted with FromGo.
func TestValue(t *testing.T, v any) Tester {
	return Tester{t, FromGo(v)}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind Kind) Tester {
	vt.t.Helper()
	kind := vt.v.Kind()
	if kind != wantKind {
		vt.t.Errorf("Kind(v) = %s, want %s", kind, wantKind)
	}
	return vt
}

// Truthy tests the truthiness of the value.
func (vt Tester) Truthy(wantTruthy bool) Tester {
	vt.t.Helper()
	b := Truthy(vt.v)
	if b != wantTruthy {
		vt.t.Errorf("Truthy(v) = %v, want %v", b, wantTruthy)
	}
	return vt
}

// Hash tests the Hash of the value.
func (vt Tester) Hash(wantHash uint32) Tester {
	vt.t.Helper()
	hash := Hash(vt.v)
	if hash != wantHash {
		vt.t.Errorf("Hash(v) = %v, want %v", hash, wantHash)
	}
	return vt
}

// Len tests the Len of the value.
func (vt Tester) Len(wantLen int) Tester {
	vt.t.Helper()
	n, ok := Len(vt.v)
	if !ok {
		vt.t.Errorf("Len(v) -> ok false, want length %v", wantLen)
	} else if n != wantLen {
		vt.t.Errorf("Len(v) = %v, want %v", n, wantLen)
	}
	return vt
}

// Repr tests the Repr of the value.
func (vt Tester) Repr(wantRepr string) Tester {
	vt.t.Helper()
	repr := ReprPlain(vt.v)
	if repr != wantRepr {
		vt.t.Errorf("Repr(v) = %s, want %s", repr, wantRepr)
	}
	return vt
}

// Display tests the ToString of the value.
func (vt Tester) Display(wantString string) Tester {
	vt.t.Helper()
	s := ToString(vt.v)
	if s != wantString {
		vt.t.Errorf("ToString(v) = %q, want %q", s, wantString)
	}
	return vt
}

// Equal tests that the value is Equal to every of the given values, and has
// the same hash as each of them.
func (vt Tester) Equal(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		o := FromGo(other)
		if !Equal(vt.v, o) {
			vt.t.Errorf("Equal(v, %s) = false, want true", ReprPlain(o))
		} else if Hash(vt.v) != Hash(o) {
			vt.t.Errorf("Hash(v) = %v, Hash(%s) = %v, want them to be the same",
				Hash(vt.v), ReprPlain(o), Hash(o))
		}
	}
	return vt
}

// NotEqual tests that the value is not Equal to any of the given values.
func (vt Tester) NotEqual(others ...any) Tester {
	vt.t.Helper()
	for _, other := range others {
		o := FromGo(other)
		if Equal(vt.v, o) {
			vt.t.Errorf("Equal(v, %s) = true, want false", ReprPlain(o))
		}
	}
	return vt
}

// AllFields tests that the value is an Object whose field names are exactly
// the given ones, in order.
func (vt Tester) AllFields(wantNames ...string) Tester {
	vt.t.Helper()
	obj, err := AsObject(vt.v)
	if err != nil {
		vt.t.Errorf("AsObject(v) -> err %v, want nil", err)
		return vt
	}
	names := slices.Collect(obj.FieldNames())
	if !slices.Equal(names, wantNames) {
		vt.t.Errorf("FieldNames() yields %q, want %q", names, wantNames)
	}
	return vt
}

// Index tests that Index'ing the value with the given key returns the wanted
// value and no error.
func (vt Tester) Index(key, wantVal any) Tester {
	vt.t.Helper()
	k, want := FromGo(key), FromGo(wantVal)
	got, err := Index(vt.v, k)
	if err != nil {
		vt.t.Errorf("Index(v, %s) -> err %v, want nil", ReprPlain(k), err)
	}
	if !Equal(got, want) {
		vt.t.Errorf("Index(v, %s) -> %s, want %s", ReprPlain(k), ReprPlain(got), ReprPlain(want))
	}
	return vt
}

// IndexError tests that Index'ing the value with the given key returns the
// given error.
func (vt Tester) IndexError(key any, wantErr error) Tester {
	vt.t.Helper()
	k := FromGo(key)
	_, err := Index(vt.v, k)
	if !reflect.DeepEqual(err, wantErr) {
		vt.t.Errorf("Index(v, %s) -> err %v, want %v", ReprPlain(k), err, wantErr)
	}
	return vt
}
