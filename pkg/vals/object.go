package vals

import (
	"fmt"
	"iter"
	"reflect"
)

// Object is implemented by host values that expose named fields to
// templates.
//
// Objects are wrapped with FromObject and shared by reference: a Value never
// copies the host value. Two Object Values are equal only when they wrap the
// same instance; fields are never compared.
//
// An Object may additionally implement fmt.Stringer to control how it is
// displayed, and Reprer to control its debug representation.
type Object interface {
	// Field returns the value of the named field and whether it exists. An
	// unknown field is reported by returning false, never as an error.
	Field(name string) (Value, bool)
	// FieldNames enumerates the field names. The sequence must be finite, may
	// be iterated any number of times, and must produce the names in the same
	// order each time for the same instance.
	FieldNames() iter.Seq[string]
}

// Function is implemented by host values that can be called from templates.
//
// Checking the number and types of arguments is up to the implementation.
// Functions are wrapped with FromFunction and shared by reference like
// Objects, and may likewise implement fmt.Stringer.
type Function interface {
	Call(args []Value) (Value, error)
}

// FuncOf adapts an ordinary Go function to the Function interface.
type FuncOf func(args []Value) (Value, error)

// Call calls f(args).
func (f FuncOf) Call(args []Value) (Value, error) { return f(args) }

// The handles stored in Values. Every FromObject or FromFunction call makes a
// new handle, and copies of a Value share it.
type objectRef struct{ obj Object }
type functionRef struct{ fn Function }

// FromObject wraps a host object. A nil obj yields NoValue.
func FromObject(obj Object) Value {
	if isNilInterface(obj) {
		return NoValue()
	}
	return Value{&objectRef{obj}}
}

// FromFunction wraps a host function. A nil fn yields NoValue.
func FromFunction(fn Function) Value {
	if isNilInterface(fn) {
		return NoValue()
	}
	return Value{&functionRef{fn}}
}

// FromFunc wraps a Go function. Each call creates a distinct Function
// instance: Values made by separate FromFunc calls are never equal, even
// for the same f, while copies of one such Value are.
func FromFunc(f func(args []Value) (Value, error)) Value {
	if f == nil {
		return NoValue()
	}
	return Value{&functionRef{FuncOf(f)}}
}

// AsObject returns the host object wrapped by v.
func AsObject(v Value) (Object, error) {
	if ref, ok := v.data.(*objectRef); ok {
		return ref.obj, nil
	}
	return nil, WrongType{KindObject.String(), v.Kind().String()}
}

// AsFunction returns the host function wrapped by v.
func AsFunction(v Value) (Function, error) {
	if ref, ok := v.data.(*functionRef); ok {
		return ref.fn, nil
	}
	return nil, WrongType{KindFunction.String(), v.Kind().String()}
}

// Call calls the Function wrapped by fn with args. Errors from the function
// are returned unchanged.
func Call(fn Value, args ...Value) (Value, error) {
	f, err := AsFunction(fn)
	if err != nil {
		return Value{}, err
	}
	return f.Call(args)
}

// Field looks up a field of an Object Value. It returns false when v is not
// an Object or has no such field.
func Field(v Value, name string) (Value, bool) {
	ref, ok := v.data.(*objectRef)
	if !ok {
		return Value{}, false
	}
	return ref.obj.Field(name)
}

// IterateFields calls f with each field of obj, in the order of FieldNames,
// until f returns false. Names that FieldNames lists but Field does not
// resolve are skipped.
func IterateFields(obj Object, f func(name string, v Value) bool) {
	for name := range obj.FieldNames() {
		v, ok := obj.Field(name)
		if !ok {
			continue
		}
		if !f(name, v) {
			return
		}
	}
}

// sameInstance reports whether two host values are the same instance.
// Pointer-like hosts compare by address. Other hosts have no identity apart
// from the handle that wraps them, and are never the same instance here.
func sameInstance(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return false
}

func isNilInterface(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func sameObject(a, b *objectRef) bool {
	return a == b || sameInstance(hostOf(a.obj), hostOf(b.obj))
}

func sameFunction(a, b *functionRef) bool {
	return a == b || sameInstance(a.fn, b.fn)
}

func displayHost(v any, placeholder string) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return placeholder
}
