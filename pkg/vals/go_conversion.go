package vals

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"reflect"
	"sync"

	"github.com/gotmpl/value/pkg/logutil"
	"github.com/gotmpl/value/pkg/num"
)

// Conversion between arbitrary Go values and Values.
//
// FromGo converts host data without knowing anything about its type in
// advance, and ScanToGo converts back, using the type of the destination to
// decide what to do. The two mirror each other: scanning FromGo(x) into a
// variable of the type of x gives back a value equal to x for plain data
// (numbers, bools, strings, slices, string-keyed maps and structs).

var logger = logutil.GetLogger("[vals] ")

// Host data nested deeper than this is assumed to be cyclic.
const maxDepth = 128

var errTooDeep = errors.New("value nested too deeply")

var valueType = reflect.TypeOf(Value{})

// FromGo converts a Go value to a Value:
//
//   - nil becomes Nil, and a nil pointer or interface becomes NoValue;
//   - a Value is returned as is;
//   - implementations of Object and Function are wrapped, as are Go
//     functions of type func([]Value) (Value, error);
//   - bools, strings, numbers and types based on them convert to the
//     corresponding variant, keeping the representation of numbers;
//   - byte slices become Strings;
//   - slices and arrays become Arrays, and maps become Maps, with keys that
//     are not strings converted with ToString;
//   - structs become Objects exposing their exported fields; a struct tag
//     `tmpl:"name"` renames a field and `tmpl:"-"` hides it;
//   - pointers are followed, except that a pointer to a struct keeps the
//     identity of the pointer.
//
// Anything else (channels, complex numbers, functions of other types) is
// wrapped as an opaque Object with no fields.
func FromGo(a any) Value {
	return fromGo(a, 0)
}

func fromGo(a any, depth int) Value {
	switch a := a.(type) {
	case nil:
		return Nil()
	case Value:
		return a
	case Object:
		return FromObject(a)
	case Function:
		return FromFunction(a)
	case func([]Value) (Value, error):
		return FromFunc(a)
	case num.Num:
		return FromNum(a)
	case bool:
		return FromBool(a)
	case string:
		return FromString(a)
	case []byte:
		return FromBytes(a)
	}
	if depth > maxDepth {
		logger.Printf("%T nested more than %d levels, using no value", a, maxDepth)
		return NoValue()
	}
	return fromReflect(reflect.ValueOf(a), depth)
}

func fromReflect(rv reflect.Value, depth int) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool())
	case reflect.String:
		return FromString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromUint64(rv.Uint())
	case reflect.Float32:
		return FromFloat32(float32(rv.Float()))
	case reflect.Float64:
		return FromFloat64(rv.Float())
	case reflect.Pointer:
		if rv.IsNil() {
			return NoValue()
		}
		if rv.Elem().Kind() == reflect.Struct {
			return FromObject(structObject{rv.Interface()})
		}
		return fromGo(rv.Elem().Interface(), depth+1)
	case reflect.Interface:
		if rv.IsNil() {
			return NoValue()
		}
		return fromGo(rv.Elem().Interface(), depth+1)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return FromBytes(rv.Bytes())
		}
		fallthrough
	case reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range elems {
			elems[i] = fromGo(rv.Index(i).Interface(), depth+1)
		}
		return Value{elems}
	case reflect.Map:
		m := make(map[string]Value, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			var k string
			if key := it.Key(); key.Kind() == reflect.String {
				k = key.String()
			} else {
				k = ToString(fromGo(key.Interface(), depth+1))
			}
			m[k] = fromGo(it.Value().Interface(), depth+1)
		}
		return Value{m}
	case reflect.Struct:
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		return FromObject(structObject{ptr.Interface()})
	}
	logger.Printf("cannot convert %s, wrapping as opaque object", rv.Type())
	return FromObject(opaqueObject{rv.Interface()})
}

// ToGo converts a Value to plain Go data: nil for Nil and NoValue, bool,
// string, int64, uint64 or float64 depending on the representation of a
// number, []any for an Array and map[string]any for a Map. Objects and
// Functions give back the host instance; for a struct converted by FromGo
// that is a pointer to it.
func ToGo(v Value) any {
	switch data := v.data.(type) {
	case nil, noValue:
		return nil
	case bool, string:
		return data
	case num.Num:
		switch data.Kind() {
		case num.Int:
			i, _ := data.Int64()
			return i
		case num.Uint:
			u, _ := data.Uint64()
			return u
		default:
			f, _ := data.Float64()
			return f
		}
	case []Value:
		s := make([]any, len(data))
		for i, e := range data {
			s[i] = ToGo(e)
		}
		return s
	case map[string]Value:
		m := make(map[string]any, len(data))
		for k, e := range data {
			m[k] = ToGo(e)
		}
		return m
	case *objectRef:
		return hostOf(data.obj)
	case *functionRef:
		return data.fn
	default:
		panic("unreachable")
	}
}

// Scanner is implemented by types that can scan a Value into themselves.
type Scanner interface {
	ScanValue(Value) error
}

// ScanToGo converts a Value to a Go value, and stores it where ptr points
// to. The type of *ptr determines the conversion:
//
//   - Value receives v unchanged, and a Scanner scans v itself;
//   - bools, strings and numbers are extracted like with AsBool, AsString,
//     AsInt64 and so on, with the range of the destination checked;
//   - byte slices accept Strings;
//   - slices and arrays accept Arrays, and are scanned element-wise;
//   - maps with string keys and structs accept Maps and Objects, and are
//     scanned entry-wise; entries without a matching struct field are
//     ignored;
//   - pointers receive nil for Nil and NoValue, and otherwise a new
//     variable to scan into;
//   - interfaces receive the host instance of an Object or Function, or
//     ToGo(v) otherwise, if assignable.
//
// Errors from scanning nested elements are wrapped with the index or key of
// the element.
func ScanToGo(v Value, ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("internal bug: need non-nil pointer to scan to, got %T", ptr)
	}
	return scanToGo(v, rv.Elem(), 0)
}

func scanToGo(v Value, dst reflect.Value, depth int) error {
	if depth > maxDepth {
		return errTooDeep
	}
	typ := dst.Type()
	if typ == valueType {
		dst.Set(reflect.ValueOf(v))
		return nil
	}
	if dst.CanAddr() {
		if s, ok := dst.Addr().Interface().(Scanner); ok {
			return s.ScanValue(v)
		}
	}
	if host := hostValue(v); host != nil && typ.Kind() != reflect.Interface {
		ht := reflect.TypeOf(host)
		switch {
		case ht.AssignableTo(typ):
			dst.Set(reflect.ValueOf(host))
			return nil
		case ht.Kind() == reflect.Pointer && ht.Elem() == typ:
			dst.Set(reflect.ValueOf(host).Elem())
			return nil
		}
	}

	switch typ.Kind() {
	case reflect.Interface:
		src := hostValue(v)
		if src == nil {
			src = ToGo(v)
		}
		if src == nil {
			dst.Set(reflect.Zero(typ))
			return nil
		}
		if !reflect.TypeOf(src).AssignableTo(typ) {
			return WrongType{typ.String(), v.Kind().String()}
		}
		dst.Set(reflect.ValueOf(src))
	case reflect.Bool:
		b, err := AsBool(v)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case reflect.String:
		s, err := AsString(v)
		if err != nil {
			return err
		}
		dst.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		low := int64(-1) << (typ.Bits() - 1)
		i, err := toInt64(v, typ.String(), low, -(low + 1))
		if err != nil {
			return err
		}
		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := toUint64(v, typ.String(), math.MaxUint64>>(64-typ.Bits()))
		if err != nil {
			return err
		}
		dst.SetUint(u)
	case reflect.Float32:
		f, err := AsFloat32(v)
		if err != nil {
			return err
		}
		dst.SetFloat(float64(f))
	case reflect.Float64:
		f, err := AsFloat64(v)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	case reflect.Slice:
		if s, ok := v.data.(string); ok && typ.Elem().Kind() == reflect.Uint8 {
			b := reflect.MakeSlice(typ, len(s), len(s))
			reflect.Copy(b, reflect.ValueOf(s))
			dst.Set(b)
			return nil
		}
		a, ok := v.data.([]Value)
		if !ok {
			return wrongType(KindArray, v)
		}
		s := reflect.MakeSlice(typ, len(a), len(a))
		if err := scanElems(a, s, depth); err != nil {
			return err
		}
		dst.Set(s)
	case reflect.Array:
		a, ok := v.data.([]Value)
		if !ok {
			return wrongType(KindArray, v)
		}
		if len(a) != typ.Len() {
			n := fmt.Sprint(typ.Len())
			return OutOfRange{What: "array length", ValidLow: n, ValidHigh: n, Actual: fmt.Sprint(len(a))}
		}
		arr := reflect.New(typ).Elem()
		if err := scanElems(a, arr, depth); err != nil {
			return err
		}
		dst.Set(arr)
	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			return WrongType{typ.String(), v.Kind().String()}
		}
		m := reflect.MakeMap(typ)
		err := eachEntry(v, func(k string, e Value) error {
			elem := reflect.New(typ.Elem()).Elem()
			if err := scanToGo(e, elem, depth+1); err != nil {
				return fmt.Errorf("key %s: %w", quote(k), err)
			}
			m.SetMapIndex(reflect.ValueOf(k).Convert(typ.Key()), elem)
			return nil
		})
		if err != nil {
			return err
		}
		dst.Set(m)
	case reflect.Struct:
		s := reflect.New(typ).Elem()
		s.Set(dst)
		fields := structFields(typ)
		err := eachEntry(v, func(k string, e Value) error {
			i, ok := fields.byName[k]
			if !ok {
				return nil
			}
			if err := scanToGo(e, s.Field(i), depth+1); err != nil {
				return fmt.Errorf("key %s: %w", quote(k), err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		dst.Set(s)
	case reflect.Pointer:
		if k := v.Kind(); k == KindNil || k == KindNoValue {
			dst.Set(reflect.Zero(typ))
			return nil
		}
		p := reflect.New(typ.Elem())
		if err := scanToGo(v, p.Elem(), depth+1); err != nil {
			return err
		}
		dst.Set(p)
	default:
		return WrongType{typ.String(), v.Kind().String()}
	}
	return nil
}

func scanElems(a []Value, dst reflect.Value, depth int) error {
	for i, e := range a {
		if err := scanToGo(e, dst.Index(i), depth+1); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

// hostValue returns the host instance of an Object or Function Value, and nil
// for any other Value.
func hostValue(v Value) any {
	switch data := v.data.(type) {
	case *objectRef:
		return hostOf(data.obj)
	case *functionRef:
		return data.fn
	}
	return nil
}

// hostOf unwraps the objects made by FromGo.
func hostOf(obj Object) any {
	switch obj := obj.(type) {
	case structObject:
		return obj.ptr
	case opaqueObject:
		return obj.v
	}
	return obj
}

// structObject exposes the exported fields of a struct. The ptr field is
// always a non-nil pointer to a struct; structObjects made from the same
// pointer are the same instance.
type structObject struct{ ptr any }

func (o structObject) elem() reflect.Value { return reflect.ValueOf(o.ptr).Elem() }

func (o structObject) Field(name string) (Value, bool) {
	rv := o.elem()
	i, ok := structFields(rv.Type()).byName[name]
	if !ok {
		return Value{}, false
	}
	return FromGo(rv.Field(i).Interface()), true
}

func (o structObject) FieldNames() iter.Seq[string] {
	names := structFields(o.elem().Type()).names
	return func(yield func(string) bool) {
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

func (o structObject) String() string {
	if s, ok := o.ptr.(fmt.Stringer); ok {
		return s.String()
	}
	return ObjectText
}

// opaqueObject wraps a host value that has no better representation.
type opaqueObject struct{ v any }

func (opaqueObject) Field(string) (Value, bool) { return Value{}, false }

func (opaqueObject) FieldNames() iter.Seq[string] { return func(func(string) bool) {} }

func (o opaqueObject) String() string { return displayHost(o.v, ObjectText) }

type structFieldInfo struct {
	// Field names in declaration order.
	names []string
	// Maps a field name to its index in the struct.
	byName map[string]int
}

var structFieldInfos sync.Map

// structFields returns the fields of a struct type visible to templates,
// caching the result.
func structFields(t reflect.Type) *structFieldInfo {
	if info, ok := structFieldInfos.Load(t); ok {
		return info.(*structFieldInfo)
	}
	info := &structFieldInfo{byName: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("tmpl"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		if _, dup := info.byName[name]; dup {
			continue
		}
		info.names = append(info.names, name)
		info.byName[name] = i
	}
	actual, _ := structFieldInfos.LoadOrStore(t, info)
	return actual.(*structFieldInfo)
}
